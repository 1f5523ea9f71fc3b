package domain

import "errors"

// Sentinel errors for the whole service. Infrastructure wraps them with %w;
// only the API error handler translates them into HTTP status codes.
var (
	// ErrInvalidCredentials covers both "no such email" and "wrong password"
	// at login so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated means no usable bearer token was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidToken means a presented token failed signature or expiry
	// verification.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden means the caller is authenticated but its role is not in
	// the route's allow-list.
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidRole  = errors.New("invalid role")
)
