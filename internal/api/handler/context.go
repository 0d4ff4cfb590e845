package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the route guard. Its absence
// means the handler was mounted without the guard, which is a wiring mistake
// surfaced as 401 rather than a panic.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get("identity").(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return identity, nil
}
