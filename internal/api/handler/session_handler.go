package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketsquare/vendor-portal/internal/api/metrics"
	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// SessionStore is the slice of the session store the handlers drive. Mutators
// are only called in response to remote API results.
type SessionStore interface {
	Login(ctx context.Context, token string, identity domain.Identity)
	Logout(ctx context.Context)
	UpdateIdentity(ctx context.Context, patch domain.IdentityPatch)
	Session() domain.Session
}

// SessionHandler owns sign-in, sign-out and session introspection.
type SessionHandler struct {
	sessions SessionStore
	authAPI  ports.AuthAPI
}

func NewSessionHandler(sessions SessionStore, authAPI ports.AuthAPI) *SessionHandler {
	return &SessionHandler{sessions: sessions, authAPI: authAPI}
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *domain.Identity `json:"identity,omitempty"`
}

// SignIn handles POST /signin — exchanges credentials with the remote
// authentication API and, on success, establishes the local session.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, identity, err := h.authAPI.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if identity == nil {
		return errors.New("sign in: remote API returned no identity")
	}

	h.sessions.Login(c.Request().Context(), token, *identity)
	metrics.SessionLoginsTotal.Inc()

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Identity: identity})
}

// SignOut handles POST /signout — clears the session. Signing out while
// already signed out succeeds with the same end state.
func (h *SessionHandler) SignOut(c echo.Context) error {
	if h.sessions.Session().Authenticated() {
		metrics.SessionLogoutsTotal.WithLabelValues("user").Inc()
	}
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Current handles GET /session — reports the current session state.
func (h *SessionHandler) Current(c echo.Context) error {
	sess := h.sessions.Session()
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: sess.Authenticated(),
		Identity:      sess.Identity,
	})
}
