package services

//go:generate mockgen -source=account.go -destination=mock_account.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hub-accounts/internal/logger"
	"github.com/sbilibin2017/hub-accounts/internal/models"
	"github.com/sbilibin2017/hub-accounts/internal/sanitize"
	"github.com/sbilibin2017/hub-accounts/internal/slugify"
	"github.com/sbilibin2017/hub-accounts/internal/storage"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrHubUserAlreadyExists = errors.New("username, email or slug already exists")
	ErrHubUserNotFound      = errors.New("hub user not found")
	ErrTransient            = errors.New("temporary storage failure")
	ErrInvalidProfileType   = errors.New("invalid profile type")
	ErrInvalidPage          = errors.New("invalid page")
)

// DefaultPageSize is used when the service is built with a non-positive page size.
const DefaultPageSize = 20

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserReader defines read-only operations for identity records.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, login string) (*models.User, error)
}

// UserWriter defines write operations for identity records.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
	LockByID(ctx context.Context, id int64) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

// HubUserReader defines read-only operations for profile records.
type HubUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.HubUser, error)
	GetByUserID(ctx context.Context, userID int64) (*models.HubUser, error)
	GetBySlug(ctx context.Context, slug string) (*models.HubUser, error)
	ListVisible(ctx context.Context, limit, offset int) ([]models.HubUser, int, error)
}

// HubUserWriter defines write operations for profile records.
type HubUserWriter interface {
	Create(ctx context.Context, hubUser *models.HubUser) error
	Save(ctx context.Context, hubUser *models.HubUser) error
}

// PasswordHasher encodes and verifies passwords.
type PasswordHasher interface {
	Encode(password string) (string, error)
	Verify(password, encoded string) (bool, error)
	NeedsUpgrade(encoded string) bool
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AccountService creates and maintains hub users.
type AccountService struct {
	tx          Transactor
	userReader  UserReader
	userWriter  UserWriter
	hubReader   HubUserReader
	hubWriter   HubUserWriter
	hasher      PasswordHasher
	kafkaWriter KafkaWriter
	pageSize    int
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	tx Transactor,
	userReader UserReader,
	userWriter UserWriter,
	hubReader HubUserReader,
	hubWriter HubUserWriter,
	hasher PasswordHasher,
	kafkaWriter KafkaWriter,
	pageSize int,
) *AccountService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &AccountService{
		tx:          tx,
		userReader:  userReader,
		userWriter:  userWriter,
		hubReader:   hubReader,
		hubWriter:   hubWriter,
		hasher:      hasher,
		kafkaWriter: kafkaWriter,
		pageSize:    pageSize,
	}
}

// CreateHubUser creates an identity record and its profile in one transaction.
// Either both records are stored or neither is. A username is generated when
// params.Username is empty; username, email and names are stripped of markup.
func (s *AccountService) CreateHubUser(ctx context.Context, params models.CreateHubUserParams) (*models.HubUser, error) {
	profileType := params.ProfileType
	if profileType == "" {
		profileType = models.ProfileTypeUser
	}
	if !profileType.Valid() {
		logger.Log.Errorw("invalid profile type", "profile_type", profileType)
		return nil, ErrInvalidProfileType
	}

	username := params.Username
	if username == "" {
		username = slugify.Username(params.FirstName, params.LastName, params.Email)
	}

	encoded, err := s.hasher.Encode(params.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Username:  sanitize.Clean(username),
		Email:     sanitize.Clean(params.Email),
		Password:  encoded,
		FirstName: sanitize.Clean(params.FirstName),
		LastName:  sanitize.Clean(params.LastName),
		IsActive:  true,
	}
	hubUser := &models.HubUser{
		MiddleName:        params.Profile.MiddleName,
		ProfileType:       profileType,
		Slug:              params.Profile.Slug,
		IsHidden:          params.Profile.IsHidden,
		IsDisabled:        params.Profile.IsDisabled,
		IsPasswordChanged: params.Profile.IsPasswordChanged,
		User:              user,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.userWriter.Create(ctx, user); err != nil {
			return err
		}
		hubUser.UserID = user.ID
		return s.hubWriter.Create(ctx, hubUser)
	})
	if err != nil {
		logger.Log.Errorw("failed to create hub user", "username", user.Username, "email", user.Email, "error", err)
		return nil, mapStorageError(err)
	}

	s.publishEvent(ctx, models.EventHubUserCreated, user, hubUser)
	return hubUser, nil
}

// UpdateEmail locks the identity owning hubUser, assigns email and saves it.
// Concurrent updates of the same identity wait for each other. The profile
// record is not modified. The email is stored as given.
func (s *AccountService) UpdateEmail(ctx context.Context, hubUser *models.HubUser, email string) (*models.User, error) {
	if hubUser == nil {
		return nil, ErrHubUserNotFound
	}

	var updated *models.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.userWriter.LockByID(ctx, hubUser.UserID)
		if err != nil {
			return err
		}
		user.Email = email
		if err := s.userWriter.Save(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to update email", "user_id", hubUser.UserID, "error", err)
		return nil, mapStorageError(err)
	}

	s.publishEvent(ctx, models.EventHubUserEmailUpdated, updated, hubUser)
	return updated, nil
}

// SaveProfile applies update to the profile and saves it. The slug never changes.
func (s *AccountService) SaveProfile(ctx context.Context, hubUserID int64, update models.ProfileUpdate) (*models.HubUser, error) {
	if update.ProfileType != nil && !update.ProfileType.Valid() {
		logger.Log.Errorw("invalid profile type", "profile_type", *update.ProfileType)
		return nil, ErrInvalidProfileType
	}

	var hubUser *models.HubUser
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		h, err := s.hubReader.GetByID(ctx, hubUserID)
		if err != nil {
			return err
		}
		update.Apply(h)
		if err := s.hubWriter.Save(ctx, h); err != nil {
			return err
		}
		hubUser = h
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to save profile", "hub_user_id", hubUserID, "error", err)
		return nil, mapStorageError(err)
	}
	return hubUser, nil
}

// GetByUserID returns the profile owned by the identity userID.
func (s *AccountService) GetByUserID(ctx context.Context, userID int64) (*models.HubUser, error) {
	hubUser, err := s.hubReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get hub user", "user_id", userID, "error", err)
		return nil, mapStorageError(err)
	}
	return hubUser, nil
}

// GetBySlug returns the profile with the given slug. Hidden profiles are not found.
func (s *AccountService) GetBySlug(ctx context.Context, slug string) (*models.HubUser, error) {
	hubUser, err := s.hubReader.GetBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to get hub user", "slug", slug, "error", err)
		return nil, mapStorageError(err)
	}
	if hubUser.IsHidden {
		return nil, ErrHubUserNotFound
	}
	return hubUser, nil
}

// ListVisible returns one page of non-hidden profiles. Pages start at 1; a page
// past the last one is ErrInvalidPage, except page 1 of an empty listing.
func (s *AccountService) ListVisible(ctx context.Context, page int) (models.Page[models.HubUser], error) {
	if page < 1 {
		return models.Page[models.HubUser]{}, ErrInvalidPage
	}

	items, total, err := s.hubReader.ListVisible(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		logger.Log.Errorw("failed to list hub users", "page", page, "error", err)
		return models.Page[models.HubUser]{}, mapStorageError(err)
	}

	result := models.NewPage(items, total, page, s.pageSize)
	if page > 1 && page > result.Pages {
		return models.Page[models.HubUser]{}, ErrInvalidPage
	}
	return result, nil
}

// DeleteAccount deletes the identity userID; its profile is removed with it.
func (s *AccountService) DeleteAccount(ctx context.Context, userID int64) error {
	var (
		user    *models.User
		hubUser *models.HubUser
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if user, err = s.userWriter.LockByID(ctx, userID); err != nil {
			return err
		}
		hubUser, err = s.hubReader.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return s.userWriter.Delete(ctx, userID)
	})
	if err != nil {
		logger.Log.Errorw("failed to delete account", "user_id", userID, "error", err)
		return mapStorageError(err)
	}

	s.publishEvent(ctx, models.EventHubUserDeleted, user, hubUser)
	return nil
}

// publishEvent publishes an account event to Kafka. Failures are logged only:
// the change is already committed.
func (s *AccountService) publishEvent(ctx context.Context, eventType string, user *models.User, hubUser *models.HubUser) {
	event := models.AccountEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		UserID:    user.ID,
		Email:     user.Email,
	}
	if hubUser != nil {
		event.HubUserUUID = hubUser.UUID.String()
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal account event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.HubUserUUID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish account event", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Account event published", "event_id", event.EventID, "type", eventType, "user_id", user.ID)
	}
}

// mapStorageError converts storage error kinds into service errors, keeping the cause.
func mapStorageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrHubUserAlreadyExists, err)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrHubUserNotFound, err)
	case errors.Is(err, storage.ErrTransient):
		return fmt.Errorf("%w: %w", ErrTransient, err)
	default:
		return err
	}
}
