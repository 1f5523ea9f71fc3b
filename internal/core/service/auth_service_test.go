package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gwarranty/user-service/internal/core/domain"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	created.ID = r.nextID
	r.nextID++
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Name:         "Seed",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewTokenService("access", "refresh", time.Minute, time.Hour)
	svc := NewAuthService(repo, tokens)

	seeded := seedUser(t, repo, "carol@example.com", "s3cret", domain.RoleShopkeeper)

	pair, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if user.ID != seeded.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.VerifyAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims.UserID != seeded.ID || claims.Email != seeded.Email || claims.Role != domain.RoleShopkeeper {
		t.Fatalf("claims do not match user: %+v", claims)
	}

	rclaims, err := tokens.VerifyRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh token invalid: %v", err)
	}
	if *rclaims != *claims {
		t.Fatalf("refresh claims %+v differ from access claims %+v", rclaims, claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, NewTokenService("a", "r", time.Minute, time.Hour))

	seedUser(t, repo, "dave@example.com", "goodpass", domain.RoleUser)

	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	repo := newStubUserRepo()
	svc := NewAuthService(repo, NewTokenService("a", "r", time.Minute, time.Hour))

	seedUser(t, repo, "known@example.com", "goodpass", domain.RoleUser)

	_, _, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, _, wrongPassErr := svc.Login(context.Background(), "known@example.com", "badpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), NewTokenService("a", "r", time.Minute, time.Hour))

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Refresh_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewTokenService("access", "refresh", time.Minute, time.Hour)
	svc := NewAuthService(repo, tokens)

	seeded := seedUser(t, repo, "erin@example.com", "pw1234", domain.RoleAdmin)

	pair, _, err := svc.Login(context.Background(), "erin@example.com", "pw1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := tokens.VerifyAccessToken(access)
	if err != nil {
		t.Fatalf("refreshed access token invalid: %v", err)
	}
	if claims.UserID != seeded.ID || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Refresh_SurvivesUserDeletion(t *testing.T) {
	// No revocation: a refresh token outlives the account it was issued to.
	repo := newStubUserRepo()
	tokens := NewTokenService("access", "refresh", time.Minute, time.Hour)
	svc := NewAuthService(repo, tokens)

	seeded := seedUser(t, repo, "gone@example.com", "pw1234", domain.RoleUser)
	pair, _, err := svc.Login(context.Background(), "gone@example.com", "pw1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := repo.Delete(context.Background(), seeded.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Refresh(pair.RefreshToken); err != nil {
		t.Fatalf("refresh after deletion should still succeed, got %v", err)
	}
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), NewTokenService("a", "r", time.Minute, time.Hour))

	if _, err := svc.Refresh("garbage"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	repo := newStubUserRepo()
	tokens := NewTokenService("access", "refresh", time.Minute, time.Hour)
	svc := NewAuthService(repo, tokens)

	seedUser(t, repo, "frank@example.com", "pw1234", domain.RoleUser)
	pair, _, err := svc.Login(context.Background(), "frank@example.com", "pw1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Refresh(pair.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("access token must not work as refresh token, got %v", err)
	}
}
