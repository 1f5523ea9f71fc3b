package handler

import "github.com/gwarranty/user-service/internal/core/domain"

// UserView is the outbound projection of a user: everything the client may
// see, and nothing it may not. The password hash has no field here, so it
// cannot leak however the view is serialised.
type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewUserView projects a single stored user into its outbound shape.
func NewUserView(u *domain.User) UserView {
	return UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// NewUserViews projects a slice of users, preserving order and length.
func NewUserViews(users []domain.User) []UserView {
	views := make([]UserView, len(users))
	for i := range users {
		views[i] = NewUserView(&users[i])
	}
	return views
}
