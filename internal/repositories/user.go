package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/storage"
)

const userColumns = `id, username, email, password, first_name, last_name,
	is_staff, is_superuser, is_active, last_login, date_joined`

// UserReadRepository reads identity records.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the identity with the given id.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM auth_user WHERE id = $1`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, storage.Classify("users.GetByID", err)
	}
	return &user, nil
}

// GetByUsernameOrEmail returns the identity whose username or email equals login.
// An exact username match wins over an email match.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT ` + userColumns + `
		FROM auth_user
		WHERE username = $1 OR email = $1
		ORDER BY (username = $1) DESC
		LIMIT 1`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, login)
	logQuery(query, []any{login}, user.ID, err)

	if err != nil {
		return nil, storage.Classify("users.GetByUsernameOrEmail", err)
	}
	return &user, nil
}

// UserWriteRepository writes identity records.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts user and fills in its id and date_joined.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO auth_user (username, email, password, first_name, last_name, is_staff, is_superuser, is_active, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, date_joined
	`
	args := []any{user.Username, user.Email, user.Password, user.FirstName, user.LastName,
		user.IsStaff, user.IsSuperuser, user.IsActive}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&user.ID, &user.DateJoined)
	logQuery(query, []any{user.Username, user.Email, user.FirstName, user.LastName}, user.ID, err)

	return storage.Classify("users.Create", err)
}

// LockByID selects the identity FOR UPDATE. It must run inside a transaction:
// the row stays locked until that transaction ends.
func (r *UserWriteRepository) LockByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM auth_user WHERE id = $1 FOR UPDATE`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, storage.Classify("users.LockByID", err)
	}
	return &user, nil
}

// Save writes every mutable column of user.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	query := `
		UPDATE auth_user
		SET username = $2, email = $3, password = $4, first_name = $5, last_name = $6,
		    is_staff = $7, is_superuser = $8, is_active = $9, last_login = $10
		WHERE id = $1
	`
	args := []any{user.ID, user.Username, user.Email, user.Password, user.FirstName, user.LastName,
		user.IsStaff, user.IsSuperuser, user.IsActive, user.LastLogin}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	rowsAffected := affected(res)
	logQuery(query, []any{user.ID, user.Username, user.Email}, rowsAffected, err)

	if err != nil {
		return storage.Classify("users.Save", err)
	}
	if rowsAffected == 0 {
		return storage.Classify("users.Save", sql.ErrNoRows)
	}
	return nil
}

// UpdateLastLogin sets last_login of the identity.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE auth_user SET last_login = $2 WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, at)
	rowsAffected := affected(res)
	logQuery(query, []any{id, at}, rowsAffected, err)

	if err != nil {
		return storage.Classify("users.UpdateLastLogin", err)
	}
	if rowsAffected == 0 {
		return storage.Classify("users.UpdateLastLogin", sql.ErrNoRows)
	}
	return nil
}

// Delete removes the identity. Its profile goes with it (ON DELETE CASCADE).
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM auth_user WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	rowsAffected := affected(res)
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return storage.Classify("users.Delete", err)
	}
	if rowsAffected == 0 {
		return storage.Classify("users.Delete", sql.ErrNoRows)
	}
	return nil
}

func affected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
