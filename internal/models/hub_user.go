package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hub-accounts/internal/slugify"
)

// HubUser represents the platform profile paired one-to-one with an identity record.
type HubUser struct {
	ID                int64       `json:"id" db:"id"`                                   // Primary key
	UUID              uuid.UUID   `json:"uuid" db:"uuid"`                               // Public identifier
	UserID            int64       `json:"user_id" db:"user_id"`                         // Owning identity
	MiddleName        *string     `json:"middle_name,omitempty" db:"middle_name"`       // Optional middle name
	ProfileType       ProfileType `json:"profile_type" db:"profile_type"`               // Role on the platform
	Slug              string      `json:"slug" db:"slug"`                               // Unique, immutable once assigned
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`                   // Creation timestamp
	ModifiedAt        time.Time   `json:"modified_at" db:"modified_at"`                 // Last save timestamp
	IsHidden          bool        `json:"is_hidden" db:"is_hidden"`                     // Excluded from public listings
	IsDisabled        bool        `json:"is_disabled" db:"is_disabled"`                 // Cannot log in
	IsPasswordChanged bool        `json:"is_password_changed" db:"is_password_changed"` // Password was changed after signup

	// User is the owning identity, populated by queries that join it.
	User *User `json:"user,omitempty" db:"-"`
}

// DisplayName renders "<first name> - <last name>" of the owning identity.
func (h *HubUser) DisplayName() string {
	if h.User == nil {
		return ""
	}
	return fmt.Sprintf("%s - %s", h.User.FirstName, h.User.LastName)
}

func (h *HubUser) String() string {
	return h.DisplayName()
}

// PrepareForInsert assigns the public uuid and the slug when they are missing.
// The slug is derived from the owning identity's first name and is never
// regenerated once set.
func (h *HubUser) PrepareForInsert() {
	if h.UUID == uuid.Nil {
		h.UUID = uuid.New()
	}
	if h.Slug == "" {
		var firstName string
		if h.User != nil {
			firstName = h.User.FirstName
		}
		h.Slug = slugify.ProfileSlug(firstName)
	}
	if h.ProfileType == "" {
		h.ProfileType = ProfileTypeUser
	}
}

// ProfileFields are the optional profile attributes accepted at creation.
type ProfileFields struct {
	MiddleName        *string `json:"middle_name,omitempty"`
	Slug              string  `json:"slug,omitempty"`
	IsHidden          bool    `json:"is_hidden"`
	IsDisabled        bool    `json:"is_disabled"`
	IsPasswordChanged bool    `json:"is_password_changed"`
}

// CreateHubUserParams is the input of the account factory.
type CreateHubUserParams struct {
	Email       string
	Password    string
	ProfileType ProfileType // defaults to ProfileTypeUser
	Username    string      // generated when empty
	FirstName   string
	LastName    string
	Profile     ProfileFields
}

// ProfileUpdate carries the mutable profile attributes. Nil fields are left as they are.
type ProfileUpdate struct {
	MiddleName        *string      `json:"middle_name,omitempty"`
	ProfileType       *ProfileType `json:"profile_type,omitempty"`
	IsHidden          *bool        `json:"is_hidden,omitempty"`
	IsDisabled        *bool        `json:"is_disabled,omitempty"`
	IsPasswordChanged *bool        `json:"is_password_changed,omitempty"`
}

// Apply copies the non-nil fields of u onto h.
func (u ProfileUpdate) Apply(h *HubUser) {
	if u.MiddleName != nil {
		h.MiddleName = u.MiddleName
	}
	if u.ProfileType != nil {
		h.ProfileType = *u.ProfileType
	}
	if u.IsHidden != nil {
		h.IsHidden = *u.IsHidden
	}
	if u.IsDisabled != nil {
		h.IsDisabled = *u.IsDisabled
	}
	if u.IsPasswordChanged != nil {
		h.IsPasswordChanged = *u.IsPasswordChanged
	}
}
