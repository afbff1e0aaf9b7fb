package services

import (
	"errors"
	"fmt"

	"aya-cleaning-api/internal/repositories"
)

// ErrMissingFields is returned when any required input field is absent or empty
var ErrMissingFields = errors.New("missing required fields: customerName, serviceType, location")

// StorageError reports that the storage collaborator rejected the write
type StorageError struct {
	RequestID string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to store service request %s: %v", e.RequestID, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Detail returns the collaborator's own description of the failure
func (e *StorageError) Detail() string {
	return repositories.ErrorDetail(e.Err)
}
