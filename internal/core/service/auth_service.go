package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/gwarranty/user-service/internal/core/domain"
	"github.com/gwarranty/user-service/internal/core/ports"
)

// AuthService implements login and token refresh.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login authenticates an email/password pair and issues an access and a
// refresh token. An unknown email and a wrong password both surface as
// domain.ErrInvalidCredentials so responses cannot be used to probe which
// emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, nil, err
	}

	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, user, nil
}

// Refresh verifies a refresh token and mints a new access token from its
// claims. The store is not re-checked: a user deleted or re-roled after
// login keeps refreshing until the refresh token itself expires.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	return s.tokens.IssueAccessTokenFromClaims(claims)
}
