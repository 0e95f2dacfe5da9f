package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/store-api/internal/api/middleware"
	"github.com/quickshop/store-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing identity on a protected route means the middleware chain is
// misconfigured; reject with 401 rather than proceeding unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
