package domain

import "time"

const (
	RoleUser       = "user"
	RoleShopkeeper = "shopkeeper"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleShopkeeper, RoleAdmin:
		return true
	}
	return false
}

// User is the identity record persisted in the users table. The password
// hash never leaves the process: handlers project users through a view type
// before serialising.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
