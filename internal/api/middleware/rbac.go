package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/gwarranty/user-service/internal/api/metrics"
	"github.com/gwarranty/user-service/internal/core/domain"
)

// RBAC permits the request only when the authenticated role is in the
// allow-list. It must run after Auth: absent claims mean the route is
// misconfigured, and the guard fails closed rather than defaulting open.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			if _, ok := allowed[claims.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
