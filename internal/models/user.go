package models

import (
	"time"
)

// User represents an identity record in the database
type User struct {
	ID          int64      `json:"id" db:"id"`                     // Primary key
	Username    string     `json:"username" db:"username"`         // Unique login name
	Email       string     `json:"email" db:"email"`               // Unique email, also accepted as login
	Password    string     `json:"-" db:"password"`                // Encoded password hash
	FirstName   string     `json:"first_name" db:"first_name"`     // Given name
	LastName    string     `json:"last_name" db:"last_name"`       // Family name
	IsStaff     bool       `json:"is_staff" db:"is_staff"`         // May use staff tooling
	IsSuperuser bool       `json:"is_superuser" db:"is_superuser"` // Has every permission
	IsActive    bool       `json:"is_active" db:"is_active"`       // Inactive identities cannot log in
	LastLogin   *time.Time `json:"last_login" db:"last_login"`     // Last successful login, nil if never
	DateJoined  time.Time  `json:"date_joined" db:"date_joined"`   // Creation timestamp
}
