// Package models contains the application's domain entities and error types.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an author account. Posts and Tasks reference it by ID;
// those relations are computed on demand and never stored on the row.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// PostCount is not persisted; computed at query time
	PostCount int `gorm:"-" json:"post_count"`
}

// UserUpdate carries a partial-field update. Nil fields are left unchanged.
type UserUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password"`
}

// BeforeCreate assigns the identifier before the row is inserted.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// Normalize trims whitespace and lowercases the email address.
func (u *User) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Avatar = strings.TrimSpace(u.Avatar)
}

// Validate checks the schema constraints, collecting every violation.
func (u *User) Validate() error {
	var messages []string

	if u.Name == "" {
		messages = append(messages, "name is required")
	}
	if u.Email == "" {
		messages = append(messages, "email is required")
	}

	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// Apply merges the provided fields into the user.
func (u *User) Apply(update UserUpdate) {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Avatar != nil {
		u.Avatar = *update.Avatar
	}
	if update.Password != nil {
		u.Password = *update.Password
	}
}
