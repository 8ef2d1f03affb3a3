package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/storage"
)

const hubUserSelect = `
	SELECT h.id, h.uuid, h.user_id, h.middle_name, h.profile_type, h.slug,
	       h.created_at, h.modified_at, h.is_hidden, h.is_disabled, h.is_password_changed,
	       u.id AS "user.id", u.username AS "user.username", u.email AS "user.email",
	       u.password AS "user.password", u.first_name AS "user.first_name",
	       u.last_name AS "user.last_name", u.is_staff AS "user.is_staff",
	       u.is_superuser AS "user.is_superuser", u.is_active AS "user.is_active",
	       u.last_login AS "user.last_login", u.date_joined AS "user.date_joined"
	FROM hub_user h
	JOIN auth_user u ON u.id = h.user_id
`

// hubUserRow is a profile joined with its owning identity.
type hubUserRow struct {
	models.HubUser
	Owner models.User `db:"user"`
}

func (row *hubUserRow) toModel() *models.HubUser {
	h := row.HubUser
	owner := row.Owner
	h.User = &owner
	return &h
}

// HubUserReadRepository reads profile records together with their identity.
type HubUserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHubUserReadRepository(db *sqlx.DB, txGetter TxGetter) *HubUserReadRepository {
	return &HubUserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the profile with the given id.
func (r *HubUserReadRepository) GetByID(ctx context.Context, id int64) (*models.HubUser, error) {
	return r.getOne(ctx, "hub_users.GetByID", hubUserSelect+`WHERE h.id = $1`, id)
}

// GetByUserID returns the profile owned by the identity userID.
func (r *HubUserReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.HubUser, error) {
	return r.getOne(ctx, "hub_users.GetByUserID", hubUserSelect+`WHERE h.user_id = $1`, userID)
}

// GetBySlug returns the profile with the given slug.
func (r *HubUserReadRepository) GetBySlug(ctx context.Context, slug string) (*models.HubUser, error) {
	return r.getOne(ctx, "hub_users.GetBySlug", hubUserSelect+`WHERE h.slug = $1`, slug)
}

func (r *HubUserReadRepository) getOne(ctx context.Context, op, query string, arg any) (*models.HubUser, error) {
	var row hubUserRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, arg)
	logQuery(query, []any{arg}, row.ID, err)

	if err != nil {
		return nil, storage.Classify(op, err)
	}
	return row.toModel(), nil
}

// ListVisible returns non-hidden profiles, oldest first, and the total number of them.
func (r *HubUserReadRepository) ListVisible(ctx context.Context, limit, offset int) ([]models.HubUser, int, error) {
	const countQuery = `SELECT COUNT(*) FROM hub_user WHERE NOT is_hidden`
	query := hubUserSelect + `
		WHERE NOT h.is_hidden
		ORDER BY h.created_at, h.id
		LIMIT $1 OFFSET $2
	`
	exec := executor(ctx, r.db, r.txGetter)

	var total int
	err := sqlx.GetContext(ctx, exec, &total, countQuery)
	logQuery(countQuery, nil, total, err)
	if err != nil {
		return nil, 0, storage.Classify("hub_users.ListVisible", err)
	}

	var rows []hubUserRow
	err = sqlx.SelectContext(ctx, exec, &rows, query, limit, offset)
	logQuery(query, []any{limit, offset}, len(rows), err)
	if err != nil {
		return nil, 0, storage.Classify("hub_users.ListVisible", err)
	}

	result := make([]models.HubUser, 0, len(rows))
	for i := range rows {
		result = append(result, *rows[i].toModel())
	}
	return result, total, nil
}

// HubUserWriteRepository writes profile records.
type HubUserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHubUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *HubUserWriteRepository {
	return &HubUserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the profile, assigning uuid and slug first when they are missing,
// and fills in id and the timestamps.
func (r *HubUserWriteRepository) Create(ctx context.Context, h *models.HubUser) error {
	h.PrepareForInsert()

	query := `
		INSERT INTO hub_user (uuid, user_id, middle_name, profile_type, slug,
		                      is_hidden, is_disabled, is_password_changed, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, modified_at
	`
	args := []any{h.UUID, h.UserID, h.MiddleName, h.ProfileType, h.Slug,
		h.IsHidden, h.IsDisabled, h.IsPasswordChanged}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&h.ID, &h.CreatedAt, &h.ModifiedAt)
	logQuery(query, args, h.ID, err)

	return storage.Classify("hub_users.Create", err)
}

// Save writes the mutable profile columns and bumps modified_at.
// The slug column is never written after creation.
func (r *HubUserWriteRepository) Save(ctx context.Context, h *models.HubUser) error {
	query := `
		UPDATE hub_user
		SET middle_name = $2, profile_type = $3, is_hidden = $4, is_disabled = $5,
		    is_password_changed = $6, modified_at = NOW()
		WHERE id = $1
		RETURNING modified_at
	`
	args := []any{h.ID, h.MiddleName, h.ProfileType, h.IsHidden, h.IsDisabled, h.IsPasswordChanged}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&h.ModifiedAt)
	logQuery(query, args, h.ModifiedAt, err)

	if err != nil {
		return storage.Classify("hub_users.Save", err)
	}
	return nil
}

