package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gwarranty/user-service/internal/core/domain"
	"github.com/gwarranty/user-service/internal/core/ports"
)

// UserService implements registration and the admin CRUD surface.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a self-service account. The role is forced to "user";
// privileged roles are only assignable through CreateWithRole behind the
// admin guard.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.create(ctx, name, email, password, domain.RoleUser)
}

// CreateWithRole creates an account with an explicit role. An empty role
// defaults to "user".
func (s *UserService) CreateWithRole(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}
	return s.create(ctx, name, email, password, role)
}

func (s *UserService) create(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces name, email and role. When password is non-empty the stored
// hash is replaced too; otherwise the existing hash is kept.
func (s *UserService) Update(ctx context.Context, id int64, name, email, password, role string) (*domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hash := current.PasswordHash
	if password != "" {
		rehash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(rehash)
	}

	return s.repo.Update(ctx, &domain.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}

// Delete removes the user and returns the deleted record so the handler can
// echo it back, as the delete endpoint has always done.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.Delete(ctx, id)
}
