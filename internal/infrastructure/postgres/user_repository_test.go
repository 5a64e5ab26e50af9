package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mis-libros/internal/domain"
	"github.com/jhoicas/mis-libros/internal/domain/entity"
)

func TestUserRepo_Create_Duplicado(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("ana", "ana@ejemplo.org", "x", int64(1), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := NewUserRepository(mock).Create(context.Background(), &entity.User{
		Username: "ana", Email: "ana@ejemplo.org", PasswordHash: "x", RoleID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ana@ejemplo.org").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "role_id", "created_at", "updated_at"}).
			AddRow(int64(1), "ana", "ana@ejemplo.org", "hash", int64(3), now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("nadie@ejemplo.org").
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	u, err := repo.GetByEmail(context.Background(), "ana@ejemplo.org")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(3), u.RoleID)

	u, err = repo.GetByEmail(context.Background(), "nadie@ejemplo.org")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ListWithRoles(t *testing.T) {
	mock := newMock(t)
	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "role_id", "created_at", "updated_at", "id", "name"}).
		AddRow(int64(1), "ana", "ana@ejemplo.org", "h", int64(3), now, now, int64(3), "Admin").
		AddRow(int64(2), "luis", "luis@ejemplo.org", "h", int64(1), now, now, int64(1), "Lector")
	mock.ExpectQuery(regexp.QuoteMeta("JOIN roles r ON r.id = u.role_id")).WillReturnRows(rows)

	list, err := NewUserRepository(mock).ListWithRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Admin", list[0].Role.Name)
	assert.Equal(t, entity.RoleLector, list[1].Role.Kind())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash = $2")).
		WithArgs(int64(1), "nuevo-hash", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password_hash = $2")).
		WithArgs(int64(2), "nuevo-hash", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewUserRepository(mock)
	assert.NoError(t, repo.UpdatePassword(context.Background(), 1, "nuevo-hash", time.Now()))
	assert.ErrorIs(t, repo.UpdatePassword(context.Background(), 2, "nuevo-hash", time.Now()), domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_GetByNameYList(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM roles WHERE name = $1")).
		WithArgs("Moderador").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "Moderador"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM roles ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Lector").AddRow(int64(2), "Moderador").AddRow(int64(3), "Admin"))

	repo := NewRoleRepository(mock)
	role, err := repo.GetByName(context.Background(), "Moderador")
	require.NoError(t, err)
	assert.Equal(t, int64(2), role.ID)

	roles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}
