// Package models contains the application's domain entities and error types.
package models

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the standardized JSON error body returned by the REST API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ValidationError reports one or more field constraint violations.
// All failing fields are collected so the caller sees every problem at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NewValidationError creates a ValidationError from one or more field messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// ReferenceError reports a foreign key pointing at a missing entity.
type ReferenceError struct {
	Field string
	ID    string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %s does not exist", e.Field, e.ID)
}

// NewReferenceError creates a ReferenceError for the given foreign key field.
func NewReferenceError(field, id string) *ReferenceError {
	return &ReferenceError{Field: field, ID: id}
}

// NotFoundError reports a failed lookup by identifier.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NewNotFoundError creates a NotFoundError for the given resource.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// StoreError wraps an underlying database failure. It is fatal for the
// request; nothing retries it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps a database error with the failing operation name.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// RespondWithError writes a standardized error response.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	response := ErrorResponse{Error: err.Error()}

	switch err.(type) {
	case *ValidationError:
		response.Code = "VALIDATION_ERROR"
	case *ReferenceError:
		response.Code = "REFERENCE_ERROR"
	case *NotFoundError:
		response.Code = "NOT_FOUND"
	case *StoreError:
		response.Code = "STORE_ERROR"
	}

	return c.Status(status).JSON(response)
}
