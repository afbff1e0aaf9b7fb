package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrValidation is returned when entity validation fails
	ErrValidation = errors.New("validation error")

	// ErrConnection is returned when the store cannot be reached or opened
	ErrConnection = errors.New("storage connection error")

	// ErrWrite is returned when the store rejects a write
	ErrWrite = errors.New("write failed")

	// ErrUnavailable is returned when the store is throttling or temporarily down
	ErrUnavailable = errors.New("storage unavailable")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op      string // Operation that failed
	Entity  string // Entity type
	ID      string // Entity ID (if applicable)
	Err     error  // Underlying error
	Message string // Human-readable message
	Detail  string // The backend's own description of the failure
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// PutError creates a repository error for a rejected put. detail is the
// backend's message and is what callers see as the failure description.
func PutError(entity, id, detail string, err error) *RepositoryError {
	if detail == "" && err != nil {
		detail = err.Error()
	}
	return &RepositoryError{
		Op:     "put",
		Entity: entity,
		ID:     id,
		Err:    err,
		Detail: detail,
	}
}

// ValidationError creates a "validation" repository error
func ValidationError(entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:      "validate",
		Entity:  entity,
		ID:      id,
		Err:     fmt.Errorf("%w: %v", ErrValidation, err),
		Message: fmt.Sprintf("validation failed for %s: %v", entity, err),
		Detail:  err.Error(),
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Entity:  "storage",
		Err:     fmt.Errorf("%w: %v", ErrConnection, err),
		Message: fmt.Sprintf("storage connection failed: %v", err),
	}
}

// ErrorDetail returns the backend's description of err, or err's own
// message when it carries none.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) && repoErr.Detail != "" {
		return repoErr.Detail
	}
	return err.Error()
}

// IsValidation checks if an error is a "validation" error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsUnavailable checks if the store reported throttling or an outage
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
