package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gwarranty/user-service/internal/api/metrics"
	"github.com/gwarranty/user-service/internal/core/domain"
	"github.com/gwarranty/user-service/internal/core/ports"
)

// claimsKey is the echo context key the verified claims are stored under.
// Handlers and the RBAC guard read it back through ClaimsFrom.
const claimsKey = "auth.claims"

// Auth verifies the bearer access token and injects the decoded claims into
// the request context. A missing or malformed header is 401; a token that
// fails signature or expiry verification is 403.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			claims, err := verifier.VerifyAccessToken(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims attached by Auth, or nil when the middleware
// has not run on this request.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(claimsKey).(*domain.Claims)
	return claims
}
