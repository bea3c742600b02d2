package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the progress of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether the status is one of the known values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether the priority is one of the known values.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// MinTaskTitleLength is the shortest accepted task title.
const MinTaskTitleLength = 3

// Task is a scheduled work item belonging to a User. Unlike Post.AuthorID,
// UserID is not checked for existence at write time.
type Task struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description,omitempty"`
	UserID      string       `gorm:"not null;index" json:"user_id"`
	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	Status      TaskStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TaskUpdate carries a partial-field update. Nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	StartDate   *time.Time    `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
}

// BeforeCreate assigns the identifier before the row is inserted.
func (t *Task) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// Normalize trims the text fields and applies enum defaults.
func (t *Task) Normalize() {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = TaskPriorityMedium
	}
}

// Validate checks the schema constraints, collecting every violation.
func (t *Task) Validate() error {
	var messages []string

	switch {
	case t.Title == "":
		messages = append(messages, "title is required")
	case utf8.RuneCountInString(t.Title) < MinTaskTitleLength:
		messages = append(messages, fmt.Sprintf("title must be at least %d characters", MinTaskTitleLength))
	}

	if t.UserID == "" {
		messages = append(messages, "user id is required")
	}
	if t.StartDate.IsZero() {
		messages = append(messages, "start date is required")
	}
	if t.EndDate.IsZero() {
		messages = append(messages, "end date is required")
	}
	if !t.Status.Valid() {
		messages = append(messages, fmt.Sprintf("status %q is not a valid status", t.Status))
	}
	if !t.Priority.Valid() {
		messages = append(messages, fmt.Sprintf("priority %q is not a valid priority", t.Priority))
	}

	if len(messages) > 0 {
		return NewValidationError(messages...)
	}
	return nil
}

// Apply merges the provided fields into the task.
func (t *Task) Apply(update TaskUpdate) {
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.StartDate != nil {
		t.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		t.EndDate = *update.EndDate
	}
	if update.Status != nil {
		t.Status = *update.Status
	}
	if update.Priority != nil {
		t.Priority = *update.Priority
	}
}
