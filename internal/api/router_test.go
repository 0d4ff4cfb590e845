package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/apiclient"
	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
	"github.com/marketsquare/vendor-portal/internal/core/session"
	"github.com/marketsquare/vendor-portal/internal/infrastructure/navigation"
	"github.com/marketsquare/vendor-portal/internal/infrastructure/record"
)

type noopVendorService struct{}

func (noopVendorService) ListVendors(ctx context.Context, filter ports.ListVendorsFilter) (*ports.ListVendorsResult, error) {
	return &ports.ListVendorsResult{}, nil
}

func (noopVendorService) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	return nil, domain.ErrVendorNotFound
}

type noopDispatcher struct{}

func (noopDispatcher) Enqueue(ports.InquiryInput) {}

// remoteAuth fakes the remote authentication API. Tokens it issued stay valid
// until Revoke is called, after which every authorized request gets a 401.
type remoteAuth struct {
	revoked bool
}

func (r *remoteAuth) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signin", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(req.Body).Decode(&creds)
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"identity": map[string]any{
				"id":           "u1",
				"display_name": "Petal & Stem",
				"email":        creds.Email,
				"role":         "vendor",
			},
		})
	})
	mux.HandleFunc("/me/profile", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.revoked || req.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var patch domain.IdentityPatch
		_ = json.NewDecoder(req.Body).Decode(&patch)
		identity := domain.Identity{ID: "u1", DisplayName: "Petal & Stem", Role: domain.RoleVendor}
		patch.Apply(&identity)
		_ = json.NewEncoder(w).Encode(identity)
	})
	return mux
}

// TestSignInToRevokedTokenFlow walks the full lifecycle: sign in, reach a
// guarded page, lose the token remotely, get bounced back to sign-in.
func TestSignInToRevokedTokenFlow(t *testing.T) {
	remote := &remoteAuth{}
	upstream := httptest.NewServer(remote.handler())
	defer upstream.Close()

	sessions := session.NewStore(record.NewMemoryStore(), zerolog.Nop())
	nav := navigation.NewTracker("/", zerolog.Nop())
	authAPI := apiclient.New(upstream.URL, sessions, nav, zerolog.Nop())

	e := NewRouter(Deps{
		Sessions:   sessions,
		AuthAPI:    authAPI,
		Vendors:    noopVendorService{},
		Dispatcher: noopDispatcher{},
		Log:        zerolog.Nop(),
	})

	// Guarded page before sign-in redirects to the sign-in view.
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/signin" {
		t.Fatalf("expected redirect to /signin, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	// Sign in through the remote API.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"email":"ana@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("sign in failed: %d %s", rec.Code, rec.Body.String())
	}
	if !sessions.Session().Authenticated() {
		t.Fatalf("session not established after sign in")
	}

	// The guard now renders the dashboard.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected dashboard to render, got %d", rec.Code)
	}

	// A profile update reaches the remote API with the bearer token attached.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/dashboard/profile", strings.NewReader(`{"city":"Porto"}`))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile update failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := sessions.Session().Identity.City; got != "Porto" {
		t.Fatalf("expected merged city, got %q", got)
	}

	// The remote API revokes the token. The next authorized call comes back
	// 401: the transport clears the session and moves to the sign-in view.
	remote.revoked = true

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/dashboard/profile", strings.NewReader(`{"city":"Faro"}`))
	req.Header.Set("Content-Type", "application/json")
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 to propagate, got %d", rec.Code)
	}
	if sessions.Session().Authenticated() {
		t.Fatalf("session must be cleared after a 401")
	}
	if nav.Current() != "/signin" {
		t.Fatalf("expected navigation to /signin, got %q", nav.Current())
	}

	// The guard re-evaluates on the next request and redirects again.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/signin" {
		t.Fatalf("expected redirect to /signin, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

// TestRoleGatedAreas checks that the vendor and customer areas only render
// for the matching role.
func TestRoleGatedAreas(t *testing.T) {
	sessions := session.NewStore(record.NewMemoryStore(), zerolog.Nop())
	sessions.Login(context.Background(), "tok-1", domain.Identity{ID: "u1", Role: domain.RoleCustomer})

	e := NewRouter(Deps{
		Sessions:   sessions,
		AuthAPI:    nil,
		Vendors:    noopVendorService{},
		Dispatcher: noopDispatcher{},
		Log:        zerolog.Nop(),
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/saved", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("customer area should render for a customer, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/listings", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/unauthorized" {
		t.Fatalf("expected redirect to /unauthorized, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
