package ports

import (
	"context"

	"github.com/gwarranty/user-service/internal/core/domain"
)

// TokenPair bundles the two credentials handed out at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	Refresh(refreshToken string) (string, error)
}

// TokenVerifier is the read side of the token service, consumed by the auth
// middleware.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*domain.Claims, error)
}
