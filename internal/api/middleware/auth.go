package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/store-api/internal/core/ports"
)

// IdentityKey is the context key under which Auth stores the verified identity.
const IdentityKey = "identity"

// Auth extracts the bearer token, verifies it, and injects the identity into
// context. Verification is self-contained: no store lookup happens here.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, err := tokens.Verify(parts[1])
			if err != nil {
				// domain.ErrTokenExpired / ErrTokenInvalid, both mapped
				// to 401 by the central error handler.
				return err
			}

			c.Set(IdentityKey, *id)
			return next(c)
		}
	}
}
