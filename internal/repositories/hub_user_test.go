package repositories

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/storage"
	"github.com/sbilibin2017/hub-accounts/internal/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubUserRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db, transaction.FromContext)
	hubWrite := NewHubUserWriteRepository(db, transaction.FromContext)
	hubRead := NewHubUserReadRepository(db, transaction.FromContext)
	ctx := context.Background()

	jane := newUser("jane", "jane@doe.com")
	require.NoError(t, userWrite.Create(ctx, jane))

	profile := &models.HubUser{UserID: jane.ID, User: jane}
	require.NoError(t, hubWrite.Create(ctx, profile))

	t.Run("CreateAssignsDefaults", func(t *testing.T) {
		assert.NotZero(t, profile.ID)
		assert.Regexp(t, regexp.MustCompile(`^jane-[0-9a-f]{12}$`), profile.Slug)
		assert.Equal(t, models.ProfileTypeUser, profile.ProfileType)
		assert.False(t, profile.CreatedAt.IsZero())
	})

	t.Run("GetBySlugJoinsIdentity", func(t *testing.T) {
		got, err := hubRead.GetBySlug(ctx, profile.Slug)
		require.NoError(t, err)
		assert.Equal(t, profile.ID, got.ID)
		assert.Equal(t, profile.UUID, got.UUID)
		require.NotNil(t, got.User)
		assert.Equal(t, "jane@doe.com", got.User.Email)
		assert.Equal(t, "Jane - Doe", got.DisplayName())
	})

	t.Run("GetByUserIDAndID", func(t *testing.T) {
		byUser, err := hubRead.GetByUserID(ctx, jane.ID)
		require.NoError(t, err)
		assert.Equal(t, profile.ID, byUser.ID)

		byID, err := hubRead.GetByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, profile.Slug, byID.Slug)
	})

	t.Run("SaveKeepsSlug", func(t *testing.T) {
		middle := "Q"
		original := profile.Slug
		before := profile.ModifiedAt

		time.Sleep(10 * time.Millisecond)
		profile.MiddleName = &middle
		profile.IsPasswordChanged = true
		profile.Slug = "attempted-change"
		require.NoError(t, hubWrite.Save(ctx, profile))
		assert.True(t, profile.ModifiedAt.After(before))

		got, err := hubRead.GetByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, original, got.Slug)
		require.NotNil(t, got.MiddleName)
		assert.Equal(t, "Q", *got.MiddleName)
		assert.True(t, got.IsPasswordChanged)
		profile.Slug = original
	})

	t.Run("SaveMissing", func(t *testing.T) {
		err := hubWrite.Save(ctx, &models.HubUser{ID: 999999, ProfileType: models.ProfileTypeUser})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("DuplicateSlug", func(t *testing.T) {
		other := newUser("other", "other@doe.com")
		require.NoError(t, userWrite.Create(ctx, other))

		err := hubWrite.Create(ctx, &models.HubUser{UserID: other.ID, Slug: profile.Slug})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("SecondProfileForIdentity", func(t *testing.T) {
		err := hubWrite.Create(ctx, &models.HubUser{UserID: jane.ID, User: jane})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("InvalidProfileType", func(t *testing.T) {
		other := newUser("typed", "typed@doe.com")
		require.NoError(t, userWrite.Create(ctx, other))

		err := hubWrite.Create(ctx, &models.HubUser{UserID: other.ID, ProfileType: "OWNER"})
		assert.Error(t, err)
	})

	t.Run("CascadeDelete", func(t *testing.T) {
		gone := newUser("gone", "gone@doe.com")
		require.NoError(t, userWrite.Create(ctx, gone))
		goneProfile := &models.HubUser{UserID: gone.ID, User: gone}
		require.NoError(t, hubWrite.Create(ctx, goneProfile))

		require.NoError(t, userWrite.Delete(ctx, gone.ID))

		_, err := hubRead.GetByID(ctx, goneProfile.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestHubUserReadRepository_ListVisible(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userWrite := NewUserWriteRepository(db, transaction.FromContext)
	hubWrite := NewHubUserWriteRepository(db, transaction.FromContext)
	hubRead := NewHubUserReadRepository(db, transaction.FromContext)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u := newUser(fmt.Sprintf("user%d", i), fmt.Sprintf("user%d@example.com", i))
		require.NoError(t, userWrite.Create(ctx, u))
		require.NoError(t, hubWrite.Create(ctx, &models.HubUser{UserID: u.ID, User: u, IsHidden: i == 2}))
	}

	first, total, err := hubRead.ListVisible(ctx, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, first, 3)
	assert.Equal(t, "user0", first[0].User.Username)
	assert.Equal(t, "user3", first[2].User.Username)

	second, total, err := hubRead.ListVisible(ctx, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, second, 1)
	assert.Equal(t, "user4", second[0].User.Username)
}

func TestHubUser_CreatePairRollsBack(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	tr := transaction.New(db)
	userWrite := NewUserWriteRepository(db, transaction.FromContext)
	userRead := NewUserReadRepository(db, transaction.FromContext)
	hubWrite := NewHubUserWriteRepository(db, transaction.FromContext)
	ctx := context.Background()

	first := newUser("first", "first@example.com")
	require.NoError(t, userWrite.Create(ctx, first))
	taken := &models.HubUser{UserID: first.ID, Slug: "taken-slug"}
	require.NoError(t, hubWrite.Create(ctx, taken))

	err := tr.WithinTx(ctx, func(ctx context.Context) error {
		u := newUser("second", "second@example.com")
		if err := userWrite.Create(ctx, u); err != nil {
			return err
		}
		return hubWrite.Create(ctx, &models.HubUser{UserID: u.ID, Slug: "taken-slug"})
	})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = userRead.GetByUsernameOrEmail(ctx, "second")
	assert.ErrorIs(t, err, storage.ErrNotFound, "identity must be rolled back with the profile")
}
