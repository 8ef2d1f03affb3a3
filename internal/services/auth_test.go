package services

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/hub-accounts/internal/jwt"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	userReader *MockUserReader
	userWriter *MockUserWriter
	hubReader  *MockHubUserReader
	hasher     *MockPasswordHasher
	tokens     *MockTokenManager
	blacklist  *MockTokenBlacklist
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newAuthService(t *testing.T) (*AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := authMocks{
		userReader: NewMockUserReader(ctrl),
		userWriter: NewMockUserWriter(ctrl),
		hubReader:  NewMockHubUserReader(ctrl),
		hasher:     NewMockPasswordHasher(ctrl),
		tokens:     NewMockTokenManager(ctrl),
		blacklist:  NewMockTokenBlacklist(ctrl),
	}
	svc := NewAuthService(m.userReader, m.userWriter, m.hubReader, m.hasher, m.tokens, m.blacklist)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 1, Username: "john", Email: "john@example.com", Password: "pbkdf2_sha256$x", IsActive: true}

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "john@example.com").Return(user, nil)
		m.hasher.EXPECT().Verify("secret", user.Password).Return(true, nil)
		m.hubReader.EXPECT().GetByUserID(ctx, int64(1)).Return(&models.HubUser{UserID: 1}, nil)
		m.tokens.EXPECT().GeneratePair(ctx, int64(1)).Return("ACCESS", "REFRESH", nil)
		m.hasher.EXPECT().NeedsUpgrade(user.Password).Return(false)
		m.userWriter.EXPECT().UpdateLastLogin(ctx, int64(1), fixedNow).Return(nil)

		access, refresh, err := svc.Login(ctx, "john@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "ACCESS", access)
		assert.Equal(t, "REFRESH", refresh)
	})

	t.Run("unknown login", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "ghost").Return(nil, storage.ErrNotFound)

		_, _, err := svc.Login(ctx, "ghost", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "john").Return(user, nil)
		m.hasher.EXPECT().Verify("bad", user.Password).Return(false, nil)

		_, _, err := svc.Login(ctx, "john", "bad")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown hash algorithm", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "john").Return(user, nil)
		m.hasher.EXPECT().Verify("secret", user.Password).Return(false, errors.New("unknown algorithm"))

		_, _, err := svc.Login(ctx, "john", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive identity", func(t *testing.T) {
		svc, m := newAuthService(t)
		inactive := *user
		inactive.IsActive = false
		m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "john").Return(&inactive, nil)
		m.hasher.EXPECT().Verify("secret", user.Password).Return(true, nil)

		_, _, err := svc.Login(ctx, "john", "secret")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})

	t.Run("disabled profile", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "john").Return(user, nil)
		m.hasher.EXPECT().Verify("secret", user.Password).Return(true, nil)
		m.hubReader.EXPECT().GetByUserID(ctx, int64(1)).Return(&models.HubUser{UserID: 1, IsDisabled: true}, nil)

		_, _, err := svc.Login(ctx, "john", "secret")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})

	t.Run("identity without profile", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "john").Return(user, nil)
		m.hasher.EXPECT().Verify("secret", user.Password).Return(true, nil)
		m.hubReader.EXPECT().GetByUserID(ctx, int64(1)).Return(nil, storage.ErrNotFound)
		m.tokens.EXPECT().GeneratePair(ctx, int64(1)).Return("A", "R", nil)
		m.hasher.EXPECT().NeedsUpgrade(user.Password).Return(false)
		// ошибка last_login не ломает вход
		m.userWriter.EXPECT().UpdateLastLogin(ctx, int64(1), fixedNow).Return(errors.New("db down"))

		access, _, err := svc.Login(ctx, "john", "secret")
		require.NoError(t, err)
		assert.Equal(t, "A", access)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "john").Return(nil, storage.ErrTransient)

		_, _, err := svc.Login(ctx, "john", "secret")
		assert.ErrorIs(t, err, ErrTransient)
	})
}

func TestAuthService_Login_UpgradesPasswordHash(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthService(t)
	legacy := &models.User{ID: 2, Username: "old", Password: "pbkdf2_sha1$1$s$h", IsActive: true}

	m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "old").Return(legacy, nil)
	m.hasher.EXPECT().Verify("pw", legacy.Password).Return(true, nil)
	m.hubReader.EXPECT().GetByUserID(ctx, int64(2)).Return(nil, storage.ErrNotFound)
	m.tokens.EXPECT().GeneratePair(ctx, int64(2)).Return("A", "R", nil)
	m.hasher.EXPECT().NeedsUpgrade(legacy.Password).Return(true)
	m.hasher.EXPECT().Encode("pw").Return("pbkdf2_sha256$600000$s$h", nil)
	m.userReader.EXPECT().GetByID(ctx, int64(2)).Return(&models.User{ID: 2, Username: "old"}, nil)
	m.userWriter.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		assert.Equal(t, "pbkdf2_sha256$600000$s$h", u.Password)
		return nil
	})
	m.userWriter.EXPECT().UpdateLastLogin(ctx, int64(2), fixedNow).Return(nil)

	_, _, err := svc.Login(ctx, "old", "pw")
	require.NoError(t, err)
}

func refreshClaims(userID int64, jti string, exp time.Time) *jwt.Claims {
	return &jwt.Claims{
		UserID:    userID,
		TokenType: jwt.TokenTypeRefresh,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	}
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-1", fixedNow.Add(time.Hour)), nil)
		m.blacklist.EXPECT().Contains(ctx, "jti-1").Return(false, nil)
		m.userReader.EXPECT().GetByID(ctx, int64(3)).Return(&models.User{ID: 3, IsActive: true}, nil)
		m.hubReader.EXPECT().GetByUserID(ctx, int64(3)).Return(&models.HubUser{UserID: 3}, nil)
		m.tokens.EXPECT().GenerateAccess(ctx, int64(3)).Return("NEW_ACCESS", nil)

		access, err := svc.Refresh(ctx, "R")
		require.NoError(t, err)
		assert.Equal(t, "NEW_ACCESS", access)
	})

	t.Run("deleted user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-1", fixedNow.Add(time.Hour)), nil)
		m.blacklist.EXPECT().Contains(ctx, "jti-1").Return(false, nil)
		m.userReader.EXPECT().GetByID(ctx, int64(3)).Return(nil, storage.ErrNotFound)

		_, err := svc.Refresh(ctx, "R")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("inactive user", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-1", fixedNow.Add(time.Hour)), nil)
		m.blacklist.EXPECT().Contains(ctx, "jti-1").Return(false, nil)
		m.userReader.EXPECT().GetByID(ctx, int64(3)).Return(&models.User{ID: 3, IsActive: false}, nil)

		_, err := svc.Refresh(ctx, "R")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})

	t.Run("disabled profile", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-1", fixedNow.Add(time.Hour)), nil)
		m.blacklist.EXPECT().Contains(ctx, "jti-1").Return(false, nil)
		m.userReader.EXPECT().GetByID(ctx, int64(3)).Return(&models.User{ID: 3, IsActive: true}, nil)
		m.hubReader.EXPECT().GetByUserID(ctx, int64(3)).Return(&models.HubUser{UserID: 3, IsDisabled: true}, nil)

		_, err := svc.Refresh(ctx, "R")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})

	t.Run("user lookup transient", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-1", fixedNow.Add(time.Hour)), nil)
		m.blacklist.EXPECT().Contains(ctx, "jti-1").Return(false, nil)
		m.userReader.EXPECT().GetByID(ctx, int64(3)).Return(nil, storage.ErrTransient)

		_, err := svc.Refresh(ctx, "R")
		assert.ErrorIs(t, err, ErrTransient)
	})

	t.Run("blacklisted", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-1", fixedNow.Add(time.Hour)), nil)
		m.blacklist.EXPECT().Contains(ctx, "jti-1").Return(true, nil)

		_, err := svc.Refresh(ctx, "R")
		assert.ErrorIs(t, err, ErrTokenBlacklisted)
	})

	t.Run("invalid", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "bad").Return(nil, jwt.ErrUnexpectedTokenType)

		_, err := svc.Refresh(ctx, "bad")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrUnexpectedTokenType)
	})

	t.Run("blacklist unavailable", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-1", fixedNow.Add(time.Hour)), nil)
		m.blacklist.EXPECT().Contains(ctx, "jti-1").Return(false, errors.New("redis down"))

		_, err := svc.Refresh(ctx, "R")
		assert.EqualError(t, err, "redis down")
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklists for remaining lifetime", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-2", fixedNow.Add(90*time.Minute)), nil)
		m.blacklist.EXPECT().Add(ctx, "jti-2", 90*time.Minute).Return(nil)

		assert.NoError(t, svc.Logout(ctx, "R"))
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "bad").Return(nil, jwt.ErrInvalidToken)

		assert.ErrorIs(t, svc.Logout(ctx, "bad"), ErrInvalidToken)
	})

	t.Run("redis error", func(t *testing.T) {
		svc, m := newAuthService(t)
		m.tokens.EXPECT().ParseRefresh(ctx, "R").Return(refreshClaims(3, "jti-2", fixedNow.Add(time.Minute)), nil)
		m.blacklist.EXPECT().Add(ctx, "jti-2", time.Minute).Return(errors.New("redis down"))

		assert.EqualError(t, svc.Logout(ctx, "R"), "redis down")
	})
}

func TestAuthService_Login_AfterCreateWithApostropheEmail(t *testing.T) {
	ctx := context.Background()
	accounts, am := newAccountService(t)
	auth, m := newAuthService(t)

	var stored models.User
	runInTx(am)
	am.hasher.EXPECT().Encode("secret").Return("hash", nil)
	am.userWriter.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			u.ID = 9
			u.IsActive = true
			stored = *u
			return nil
		})
	am.hubWriter.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	am.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, err := accounts.CreateHubUser(ctx, models.CreateHubUserParams{
		Email:     "o'neil@x.com",
		Password:  "secret",
		FirstName: "Jane",
		LastName:  "O'Brien",
	})
	require.NoError(t, err)
	assert.Equal(t, "o'neil@x.com", stored.Email)
	assert.Equal(t, "O'Brien", stored.LastName)

	m.userReader.EXPECT().GetByUsernameOrEmail(ctx, "o'neil@x.com").DoAndReturn(
		func(_ context.Context, login string) (*models.User, error) {
			if login != stored.Email {
				return nil, storage.ErrNotFound
			}
			u := stored
			return &u, nil
		})
	m.hasher.EXPECT().Verify("secret", "hash").Return(true, nil)
	m.hubReader.EXPECT().GetByUserID(ctx, int64(9)).Return(&models.HubUser{UserID: 9}, nil)
	m.tokens.EXPECT().GeneratePair(ctx, int64(9)).Return("ACCESS", "REFRESH", nil)
	m.hasher.EXPECT().NeedsUpgrade("hash").Return(false)
	m.userWriter.EXPECT().UpdateLastLogin(ctx, int64(9), fixedNow).Return(nil)

	access, _, err := auth.Login(ctx, "o'neil@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ACCESS", access)
}
