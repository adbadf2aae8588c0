package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/household-store/admin-api/internal/core/domain"
)

// RBAC gates a route group on the role claim injected by Auth. It is the
// namespace-level check; per-target hierarchy and self-target checks live
// in the service access gate.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
