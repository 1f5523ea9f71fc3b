package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwarranty/user-service/internal/core/domain"
)

var userCols = []string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func userRow(mock pgxmock.PgxPoolIface, id int64, name, email, hash, role string) *pgxmock.Rows {
	now := time.Now()
	return mock.NewRows(userCols).AddRow(id, name, email, hash, role, now, now)
}

func TestUserRepository_Create(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Muskan", "muskan@example.com", "hash", "user").
		WillReturnRows(userRow(mock, 1, "Muskan", "muskan@example.com", "hash", "user"))

	created, err := repo.Create(context.Background(), &domain.User{
		Name:         "Muskan",
		Email:        "muskan@example.com",
		PasswordHash: "hash",
		Role:         "user",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "user", created.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Muskan", "muskan@example.com", "hash", "user").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &domain.User{
		Name:         "Muskan",
		Email:        "muskan@example.com",
		PasswordHash: "hash",
		Role:         "user",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("muskan@example.com").
		WillReturnRows(userRow(mock, 7, "Muskan", "muskan@example.com", "hash", "admin"))

	user, err := repo.FindByEmail(context.Background(), "muskan@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	mock, repo := newMockRepo(t)

	now := time.Now()
	rows := mock.NewRows(userCols).
		AddRow(int64(1), "A", "a@x.com", "h1", "user", now, now).
		AddRow(int64(2), "B", "b@x.com", "h2", "shopkeeper", now, now)
	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id ASC").
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(2), users[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_Empty(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id ASC").
		WillReturnRows(mock.NewRows(userCols))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("UPDATE users").
		WithArgs("New", "new@x.com", "newhash", "shopkeeper", int64(3)).
		WillReturnRows(userRow(mock, 3, "New", "new@x.com", "newhash", "shopkeeper"))

	updated, err := repo.Update(context.Background(), &domain.User{
		ID:           3,
		Name:         "New",
		Email:        "new@x.com",
		PasswordHash: "newhash",
		Role:         "shopkeeper",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", updated.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("UPDATE users").
		WithArgs("New", "new@x.com", "h", "user", int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), &domain.User{
		ID: 404, Name: "New", Email: "new@x.com", PasswordHash: "h", Role: "user",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("UPDATE users").
		WithArgs("New", "taken@x.com", "h", "user", int64(3)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Update(context.Background(), &domain.User{
		ID: 3, Name: "New", Email: "taken@x.com", PasswordHash: "h", Role: "user",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("DELETE FROM users WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(userRow(mock, 5, "Gone", "gone@x.com", "h", "user"))

	deleted, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "gone@x.com", deleted.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("DELETE FROM users WHERE id").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
