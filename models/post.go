package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Title and content length constraints, matched by the store on every write.
const (
	TitleMinLength   = 3
	TitleMaxLength   = 100
	ContentMinLength = 10
)

// DefaultExcerptLength is the excerpt cutoff used when none is configured.
const DefaultExcerptLength = 150

// Post is a blog entry written by a User. AuthorID must reference an
// existing User at write time; the row itself carries no author data.
type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  string    `gorm:"not null;index" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostUpdate carries a partial-field update. Nil fields are left unchanged.
type PostUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	AuthorID *string `json:"author_id"`
}

// BeforeCreate assigns the identifier before the row is inserted.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// Normalize trims whitespace from the text fields.
func (p *Post) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
}

// Validate checks the schema constraints, collecting every violation.
func (p *Post) Validate() error {
	var messages []string

	// Lengths are counted in runes, matching how Excerpt truncates.
	switch {
	case p.Title == "":
		messages = append(messages, "title is required")
	case utf8.RuneCountInString(p.Title) < TitleMinLength:
		messages = append(messages, fmt.Sprintf("title must be at least %d characters", TitleMinLength))
	case utf8.RuneCountInString(p.Title) > TitleMaxLength:
		messages = append(messages, fmt.Sprintf("title cannot exceed %d characters", TitleMaxLength))
	}

	switch {
	case p.Content == "":
		messages = append(messages, "content is required")
	case utf8.RuneCountInString(p.Content) < ContentMinLength:
		messages = append(messages, fmt.Sprintf("content must be at least %d characters", ContentMinLength))
	}

	if p.AuthorID == "" {
		messages = append(messages, "author id is required")
	}

	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// Apply merges the provided fields into the post.
func (p *Post) Apply(update PostUpdate) {
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Content != nil {
		p.Content = *update.Content
	}
	if update.AuthorID != nil {
		p.AuthorID = *update.AuthorID
	}
}

// Excerpt returns the content truncated to length runes, with an ellipsis
// when anything was cut off.
func (p *Post) Excerpt(length int) string {
	if length <= 0 {
		length = DefaultExcerptLength
	}
	runes := []rune(p.Content)
	if len(runes) <= length {
		return p.Content
	}
	return string(runes[:length]) + "..."
}
