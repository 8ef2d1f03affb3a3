package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/hub-accounts/internal/jwt"
	"github.com/sbilibin2017/hub-accounts/internal/logger"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/storage"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrTokenBlacklisted   = errors.New("token is blacklisted")
)

// TokenManager issues and parses access/refresh token pairs.
type TokenManager interface {
	GeneratePair(ctx context.Context, userID int64) (access, refresh string, err error)
	GenerateAccess(ctx context.Context, userID int64) (string, error)
	ParseRefresh(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenBlacklist remembers revoked refresh tokens until they expire.
type TokenBlacklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
}

// AuthService handles login, token refresh and logout.
type AuthService struct {
	userReader UserReader
	userWriter UserWriter
	hubReader  HubUserReader
	hasher     PasswordHasher
	tokens     TokenManager
	blacklist  TokenBlacklist
	now        func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userReader UserReader,
	userWriter UserWriter,
	hubReader HubUserReader,
	hasher PasswordHasher,
	tokens TokenManager,
	blacklist TokenBlacklist,
) *AuthService {
	return &AuthService{
		userReader: userReader,
		userWriter: userWriter,
		hubReader:  hubReader,
		hasher:     hasher,
		tokens:     tokens,
		blacklist:  blacklist,
		now:        time.Now,
	}
}

// Login authenticates by username or email and returns a token pair.
func (s *AuthService) Login(ctx context.Context, login, password string) (access, refresh string, err error) {
	user, err := s.userReader.GetByUsernameOrEmail(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Log.Errorw("login failed: user not found", "login", login)
			return "", "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "login", login, "error", err)
		return "", "", mapStorageError(err)
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		logger.Log.Errorw("failed to verify password", "user_id", user.ID, "error", err)
		return "", "", ErrInvalidCredentials
	}
	if !ok {
		logger.Log.Errorw("login failed: wrong password", "user_id", user.ID)
		return "", "", ErrInvalidCredentials
	}

	if err := s.checkEnabled(ctx, user); err != nil {
		return "", "", err
	}

	access, refresh, err = s.tokens.GeneratePair(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate tokens", "user_id", user.ID, "error", err)
		return "", "", err
	}

	if s.hasher.NeedsUpgrade(user.Password) {
		s.upgradePassword(ctx, user.ID, password)
	}
	if err := s.userWriter.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		logger.Log.Warnw("failed to update last login", "user_id", user.ID, "error", err)
	}

	return access, refresh, nil
}

// upgradePassword re-encodes a verified password with the preferred algorithm.
func (s *AuthService) upgradePassword(ctx context.Context, userID int64, password string) {
	encoded, err := s.hasher.Encode(password)
	if err != nil {
		logger.Log.Warnw("failed to re-encode password", "user_id", userID, "error", err)
		return
	}
	user, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Warnw("failed to reload user", "user_id", userID, "error", err)
		return
	}
	user.Password = encoded
	if err := s.userWriter.Save(ctx, user); err != nil {
		logger.Log.Warnw("failed to save upgraded password", "user_id", userID, "error", err)
	}
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refresh string) (string, error) {
	claims, err := s.tokens.ParseRefresh(ctx, refresh)
	if err != nil {
		logger.Log.Errorw("invalid refresh token", "error", err)
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	blacklisted, err := s.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		logger.Log.Errorw("failed to check token blacklist", "jti", claims.ID, "error", err)
		return "", err
	}
	if blacklisted {
		return "", ErrTokenBlacklisted
	}

	user, err := s.userReader.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Log.Errorw("refresh failed: user not found", "user_id", claims.UserID)
			return "", ErrInvalidToken
		}
		logger.Log.Errorw("failed to get user", "user_id", claims.UserID, "error", err)
		return "", mapStorageError(err)
	}
	if err := s.checkEnabled(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.GenerateAccess(ctx, user.ID)
}

// checkEnabled rejects inactive identities and disabled profiles.
func (s *AuthService) checkEnabled(ctx context.Context, user *models.User) error {
	if !user.IsActive {
		return ErrAccountDisabled
	}
	hubUser, err := s.hubReader.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		if hubUser.IsDisabled {
			return ErrAccountDisabled
		}
	case errors.Is(err, storage.ErrNotFound):
		// identities without a profile (e.g. superusers) may still log in
	default:
		logger.Log.Errorw("failed to get hub user", "user_id", user.ID, "error", err)
		return mapStorageError(err)
	}
	return nil
}

// Logout blacklists a refresh token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, refresh string) error {
	claims, err := s.tokens.ParseRefresh(ctx, refresh)
	if err != nil {
		logger.Log.Errorw("invalid refresh token", "error", err)
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}
	if err := s.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		logger.Log.Errorw("failed to blacklist token", "jti", claims.ID, "error", err)
		return err
	}
	return nil
}
