package ports

import (
	"context"

	"github.com/gwarranty/user-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
//
// Lookup and mutation methods return domain.ErrUserNotFound when the target
// row does not exist; Create returns domain.ErrUserExists on an email
// uniqueness violation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}
