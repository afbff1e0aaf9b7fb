package services

import (
	"context"

	"aya-cleaning-api/internal/models"
)

// ServiceRequestService defines the business operations on service requests
type ServiceRequestService interface {
	// CreateServiceRequest validates req and persists a new pending request.
	// It returns ErrMissingFields for incomplete input and *StorageError
	// when the store rejects the write.
	CreateServiceRequest(ctx context.Context, req *CreateServiceRequestRequest) (*models.ServiceRequest, error)
}

// CreateServiceRequestRequest holds the caller-supplied fields
type CreateServiceRequestRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	ServiceType  string `json:"serviceType" validate:"required"`
	Location     string `json:"location" validate:"required"`
}
