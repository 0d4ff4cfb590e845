package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
)

func TestDashboardHandler_Me(t *testing.T) {
	e := echo.New()
	h := NewDashboardHandler(&stubSessionStore{}, &stubAuthAPI{})

	c, rec := newTestContext(e, http.MethodGet, "/dashboard", "")
	c.Set("identity", &domain.Identity{ID: "u1", DisplayName: "Ana"})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDashboardHandler_Me_MissingIdentity(t *testing.T) {
	e := echo.New()
	h := NewDashboardHandler(&stubSessionStore{}, &stubAuthAPI{})

	c, _ := newTestContext(e, http.MethodGet, "/dashboard", "")
	err := h.Me(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestDashboardHandler_UpdateProfile_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	identity := &domain.Identity{ID: "u1", DisplayName: "Ana", Email: "ana@example.com", Role: domain.RoleVendor, City: "Lisbon"}
	sessions := &stubSessionStore{session: domain.Session{Token: "tok-1", Identity: identity}}
	api := &stubAuthAPI{
		profileFn: func(ctx context.Context, patch domain.IdentityPatch) (*domain.Identity, error) {
			if patch.City == nil || *patch.City != "Porto" {
				t.Fatalf("patch not forwarded to remote API: %+v", patch)
			}
			updated := identity.Clone()
			patch.Apply(updated)
			return updated, nil
		},
	}
	h := NewDashboardHandler(sessions, api)

	c, rec := newTestContext(e, http.MethodPatch, "/dashboard/profile", `{"city":"Porto"}`)
	c.Set("identity", identity)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(sessions.patches) != 1 {
		t.Fatalf("expected one local merge, got %d", len(sessions.patches))
	}
	if sessions.session.Identity.City != "Porto" {
		t.Fatalf("city not merged: %+v", sessions.session.Identity)
	}
	if sessions.session.Identity.Email != "ana@example.com" || sessions.session.Identity.Role != domain.RoleVendor {
		t.Fatalf("untouched fields changed: %+v", sessions.session.Identity)
	}
}

func TestDashboardHandler_UpdateProfile_RemoteFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	identity := &domain.Identity{ID: "u1", City: "Lisbon"}
	sessions := &stubSessionStore{session: domain.Session{Token: "tok-1", Identity: identity}}
	remoteErr := errors.New("upstream down")
	api := &stubAuthAPI{
		profileFn: func(ctx context.Context, patch domain.IdentityPatch) (*domain.Identity, error) {
			return nil, remoteErr
		},
	}
	h := NewDashboardHandler(sessions, api)

	c, _ := newTestContext(e, http.MethodPatch, "/dashboard/profile", `{"city":"Porto"}`)
	c.Set("identity", identity)

	if err := h.UpdateProfile(c); !errors.Is(err, remoteErr) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if len(sessions.patches) != 0 {
		t.Fatalf("local identity must not change when the remote update fails")
	}
	if sessions.session.Identity.City != "Lisbon" {
		t.Fatalf("city changed despite remote failure: %+v", sessions.session.Identity)
	}
}

func TestDashboardHandler_UpdateProfile_InvalidEmail(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	h := NewDashboardHandler(&stubSessionStore{}, &stubAuthAPI{
		profileFn: func(ctx context.Context, patch domain.IdentityPatch) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(e, http.MethodPatch, "/dashboard/profile", `{"email":"not-an-email"}`)
	c.Set("identity", &domain.Identity{ID: "u1"})

	err := h.UpdateProfile(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestDashboardHandler_Areas(t *testing.T) {
	e := echo.New()
	h := NewDashboardHandler(&stubSessionStore{}, &stubAuthAPI{})

	c, rec := newTestContext(e, http.MethodGet, "/dashboard/listings", "")
	c.Set("identity", &domain.Identity{ID: "u1", DisplayName: "Petal & Stem", Role: domain.RoleVendor, Category: "florist"})
	if err := h.VendorArea(c); err != nil {
		t.Fatalf("vendor area: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = newTestContext(e, http.MethodGet, "/dashboard/saved", "")
	c.Set("identity", &domain.Identity{ID: "u2", DisplayName: "Rui", Role: domain.RoleCustomer})
	if err := h.CustomerArea(c); err != nil {
		t.Fatalf("customer area: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
