package apiclient

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/api/metrics"
	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// SessionSource is the slice of the session store the transport needs.
type SessionSource interface {
	Session() domain.Session
	Logout(ctx context.Context)
}

// AuthTransport is an http.RoundTripper that attaches the current bearer
// token to every outgoing request and reacts to server-reported invalidation.
//
// On a 401 response it clears the session and asks the navigator to move to
// the sign-in view — unless the current location already is the sign-in view,
// since the redirect could itself trigger further unauthenticated requests
// that 401 again. The response is always returned to the caller unmodified.
//
// Transport-level errors pass through untouched: they are not evidence of an
// invalid session and never clear it.
type AuthTransport struct {
	Base       http.RoundTripper
	Sessions   SessionSource
	Navigator  ports.Navigator
	SignInPath string
	Log        zerolog.Logger
}

var _ http.RoundTripper = (*AuthTransport)(nil)

// DefaultSignInPath is used when SignInPath is unset.
const DefaultSignInPath = "/signin"

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per the RoundTripper contract the original request is not mutated.
	out := req.Clone(req.Context())
	if token := t.Sessions.Session().Token; token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.UnauthorizedResponsesTotal.Inc()
		metrics.SessionLogoutsTotal.WithLabelValues("unauthorized").Inc()
		t.Log.Info().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("remote API reported session invalid, signing out")

		t.Sessions.Logout(req.Context())

		signIn := t.signInPath()
		if t.Navigator != nil && t.Navigator.Current() != signIn {
			t.Navigator.To(signIn)
		}
	}

	return resp, nil
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *AuthTransport) signInPath() string {
	if t.SignInPath != "" {
		return t.SignInPath
	}
	return DefaultSignInPath
}
