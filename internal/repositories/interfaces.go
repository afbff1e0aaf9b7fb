package repositories

import (
	"context"

	"aya-cleaning-api/internal/models"
)

// ServiceRequestRepository is the storage collaborator for service requests.
// Put is a single unconditional insert keyed by RequestID; there are no
// reads, updates or deletes.
type ServiceRequestRepository interface {
	Put(ctx context.Context, request *models.ServiceRequest) error
}

// Closer is implemented by repositories that hold resources
type Closer interface {
	Close() error
}
