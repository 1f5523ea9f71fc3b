package ports

import (
	"context"

	"github.com/gwarranty/user-service/internal/core/domain"
)

// UserService covers registration and the admin-only CRUD surface.
type UserService interface {
	// Register creates a self-service account; the role is always "user".
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// CreateWithRole creates an account with an explicit role. An empty role
	// defaults to "user"; a role outside the closed set fails with
	// domain.ErrInvalidRole.
	CreateWithRole(ctx context.Context, name, email, password, role string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	// Update replaces name, email and role. A non-empty password is re-hashed;
	// an empty one leaves the stored hash untouched.
	Update(ctx context.Context, id int64, name, email, password, role string) (*domain.User, error)
	// Delete removes the user and returns the deleted record.
	Delete(ctx context.Context, id int64) (*domain.User, error)
}
