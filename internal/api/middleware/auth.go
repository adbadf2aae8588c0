package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/household-store/admin-api/internal/core/ports"
)

// Auth validates the bearer access token and injects its claims into the
// request context as "email" and "role". Refresh tokens are rejected here;
// they are only good for the refresh endpoint. Every failure yields the
// same generic 401 regardless of cause.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			token := parts[1]

			if !tokens.Validate(token) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			typ, err := tokens.TokenType(token)
			if err != nil || typ != ports.TokenTypeAccess {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			email, err := tokens.Subject(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			role, err := tokens.Role(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("email", email)
			c.Set("role", string(role))

			return next(c)
		}
	}
}
