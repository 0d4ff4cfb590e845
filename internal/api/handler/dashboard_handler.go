package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// DashboardHandler serves the guarded dashboard area.
type DashboardHandler struct {
	sessions SessionStore
	authAPI  ports.AuthAPI
}

func NewDashboardHandler(sessions SessionStore, authAPI ports.AuthAPI) *DashboardHandler {
	return &DashboardHandler{sessions: sessions, authAPI: authAPI}
}

type updateProfileRequest struct {
	DisplayName *string        `json:"display_name" validate:"omitempty,min=1"`
	Email       *string        `json:"email"        validate:"omitempty,email"`
	Phone       *string        `json:"phone"`
	Category    *string        `json:"category"`
	City        *string        `json:"city"`
	AvatarURL   *string        `json:"avatar_url"   validate:"omitempty,url"`
	LogoURL     *string        `json:"logo_url"     validate:"omitempty,url"`
	About       *string        `json:"about"        validate:"omitempty,max=2000"`
	Preferences map[string]any `json:"preferences"`
}

// Me handles GET /dashboard — returns the identity the guard resolved.
func (h *DashboardHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// UpdateProfile handles PATCH /dashboard/profile. The remote API owns the
// profile; the local identity is only merged after the remote update
// succeeds.
func (h *DashboardHandler) UpdateProfile(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	patch := domain.IdentityPatch{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
		Category:    req.Category,
		City:        req.City,
		AvatarURL:   req.AvatarURL,
		LogoURL:     req.LogoURL,
		About:       req.About,
		Preferences: req.Preferences,
	}

	if _, err := h.authAPI.UpdateProfile(c.Request().Context(), patch); err != nil {
		return err
	}

	h.sessions.UpdateIdentity(c.Request().Context(), patch)
	return c.JSON(http.StatusOK, h.sessions.Session().Identity)
}

// VendorArea handles GET /dashboard/listings — reachable only with the
// vendor role.
func (h *DashboardHandler) VendorArea(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"area":     "listings",
		"vendor":   identity.DisplayName,
		"category": identity.Category,
	})
}

// CustomerArea handles GET /dashboard/saved — reachable only with the
// customer role.
func (h *DashboardHandler) CustomerArea(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"area":     "saved",
		"customer": identity.DisplayName,
	})
}
