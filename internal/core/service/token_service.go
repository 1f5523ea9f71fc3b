package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gwarranty/user-service/internal/core/domain"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// tokenClaims is the wire shape of both token kinds: identity fields plus the
// registered expiry/issued-at claims.
type tokenClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed access and refresh tokens.
// The two kinds share a claim shape but are signed with independent secrets,
// so an access token never verifies as a refresh token or vice versa.
//
// Issuance is pure CPU work; there is no persistence and no revocation list.
// A token stays valid until its expiry regardless of later account changes.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccessToken signs a short-lived token carrying the user's identity.
func (s *TokenService) IssueAccessToken(user *domain.User) (string, error) {
	return s.issueFromClaims(&domain.Claims{UserID: user.ID, Email: user.Email, Role: user.Role})
}

// IssueAccessTokenFromClaims re-issues an access token during the refresh
// flow, straight from the verified refresh claims. The store is deliberately
// not consulted.
func (s *TokenService) IssueAccessTokenFromClaims(claims *domain.Claims) (string, error) {
	return s.issueFromClaims(claims)
}

// IssueRefreshToken signs a long-lived token with the refresh secret.
func (s *TokenService) IssueRefreshToken(user *domain.User) (string, error) {
	return s.sign(user.ID, user.Email, user.Role, s.refreshSecret, s.refreshTTL)
}

func (s *TokenService) issueFromClaims(claims *domain.Claims) (string, error) {
	return s.sign(claims.UserID, claims.Email, claims.Role, s.accessSecret, s.accessTTL)
}

func (s *TokenService) sign(id int64, email, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: id,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAccessToken checks signature and expiry against the access secret and
// returns the decoded identity claims. Any failure collapses to
// domain.ErrInvalidToken; the caller never learns why verification failed.
func (s *TokenService) VerifyAccessToken(token string) (*domain.Claims, error) {
	return s.verify(token, s.accessSecret)
}

// VerifyRefreshToken is VerifyAccessToken against the refresh secret.
func (s *TokenService) VerifyRefreshToken(token string) (*domain.Claims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *TokenService) verify(token string, secret []byte) (*domain.Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &domain.Claims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
