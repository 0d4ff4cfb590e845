package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketsquare/vendor-portal/internal/api/metrics"
	"github.com/marketsquare/vendor-portal/internal/core/domain"
)

// Fixed destinations the guard redirects to.
const (
	SignInPath       = "/signin"
	UnauthorizedPath = "/unauthorized"
)

// SessionReader is the read-only view of the session store the guard needs.
type SessionReader interface {
	Session() domain.Session
}

// Guard gates protected routes on the current session and an optional role
// allowlist. The decision is re-evaluated from the store on every request, so
// a logout elsewhere immediately flips protected routes to the redirect path:
//
//   - no token            → 303 to the sign-in view
//   - role not allowed    → 303 to the unauthorized view
//   - otherwise           → the protected handler runs with the identity
//     available under the "identity" context key
func Guard(sessions SessionReader, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := sessions.Session()

			if !sess.Authenticated() {
				metrics.GuardDecisionsTotal.WithLabelValues("signin_redirect").Inc()
				return c.Redirect(http.StatusSeeOther, SignInPath)
			}

			if len(allowed) > 0 && sess.Identity != nil {
				if _, ok := allowed[sess.Identity.Role]; !ok {
					metrics.GuardDecisionsTotal.WithLabelValues("role_redirect").Inc()
					return c.Redirect(http.StatusSeeOther, UnauthorizedPath)
				}
			}

			metrics.GuardDecisionsTotal.WithLabelValues("render").Inc()
			c.Set("identity", sess.Identity)
			return next(c)
		}
	}
}
