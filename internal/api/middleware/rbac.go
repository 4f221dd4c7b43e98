package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vovzone/designer-platform/internal/core/domain"
)

// RBAC enforces role-based access control. A structurally valid token
// carrying a role outside the allowed set is rejected with 403.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
