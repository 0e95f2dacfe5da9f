package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/store-api/internal/core/domain"
)

// RequireScope gates a route on the presence of a scope in the verified
// identity. Ownership conditions are not checked here: owner-conditional
// scopes still go through the authz engine in the service layer, which sees
// the target resource.
func RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !id.HasScope(scope) {
				return domain.ErrInsufficientScope
			}
			return next(c)
		}
	}
}
