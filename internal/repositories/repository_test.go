package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/storage"
	"github.com/sbilibin2017/hub-accounts/internal/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestExecutor_PrefersContextTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()

	tx, err := db.Beginx()
	require.NoError(t, err)

	ctx := transaction.WithTx(context.Background(), tx)
	assert.Same(t, tx, executor(ctx, db, transaction.FromContext))
	assert.Same(t, db, executor(context.Background(), db, transaction.FromContext))
	assert.Same(t, db, executor(ctx, db, nil))
}

func TestUserWriteRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auth_user")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "auth_user_username_key"})

	err := NewUserWriteRepository(db, nil).Create(context.Background(), newUser("dup", "dup@example.com"))

	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create_ScansID(t *testing.T) {
	db, mock := newMockDB(t)
	joined := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auth_user")).
		WithArgs("jane", "jane@doe.com", sqlmock.AnyArg(), "Jane", "Doe", false, false, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date_joined"}).AddRow(int64(17), joined))

	user := newUser("jane", "jane@doe.com")
	require.NoError(t, NewUserWriteRepository(db, nil).Create(context.Background(), user))

	assert.Equal(t, int64(17), user.ID)
	assert.Equal(t, joined, user.DateJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_LockByID_Transient(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(5)).
		WillReturnError(&pgconn.PgError{Code: "55P03"})

	user, err := NewUserWriteRepository(db, nil).LockByID(context.Background(), 5)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, storage.ErrTransient)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateLastLogin_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE auth_user SET last_login")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewUserWriteRepository(db, nil).UpdateLastLogin(context.Background(), 5, time.Now())

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestHubUserReadRepository_GetBySlug_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE h.slug = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := NewHubUserReadRepository(db, nil).GetBySlug(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHubUserWriteRepository_Save_DoesNotWriteSlug(t *testing.T) {
	db, mock := newMockDB(t)
	modified := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`UPDATE hub_user\s+SET middle_name = \$2, profile_type = \$3, is_hidden = \$4, is_disabled = \$5,\s+is_password_changed = \$6, modified_at = NOW\(\)`).
		WithArgs(int64(3), nil, models.ProfileTypeStaff, true, false, false).
		WillReturnRows(sqlmock.NewRows([]string{"modified_at"}).AddRow(modified))

	h := &models.HubUser{ID: 3, Slug: "jane-0123456789ab", ProfileType: models.ProfileTypeStaff, IsHidden: true}
	require.NoError(t, NewHubUserWriteRepository(db, nil).Save(context.Background(), h))

	assert.Equal(t, modified, h.ModifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
