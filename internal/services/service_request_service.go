package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"aya-cleaning-api/internal/models"
	"aya-cleaning-api/internal/repositories"
)

// Option customises a service request service
type Option func(*serviceRequestService)

// WithClock replaces time.Now as the source of creation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *serviceRequestService) {
		s.now = now
	}
}

// WithIDGenerator replaces the random UUID generator for request IDs
func WithIDGenerator(newID func() string) Option {
	return func(s *serviceRequestService) {
		s.newID = newID
	}
}

// WithLogger sets the logger
func WithLogger(logger *logrus.Logger) Option {
	return func(s *serviceRequestService) {
		s.logger = logger
	}
}

// serviceRequestService implements the ServiceRequestService interface
type serviceRequestService struct {
	repo      repositories.ServiceRequestRepository
	validator *validator.Validate
	now       func() time.Time
	newID     func() string
	logger    *logrus.Logger
}

// NewServiceRequestService creates a new service request service instance
func NewServiceRequestService(repo repositories.ServiceRequestRepository, opts ...Option) ServiceRequestService {
	s := &serviceRequestService{
		repo:      repo,
		validator: validator.New(),
		now:       time.Now,
		newID:     uuid.NewString,
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateServiceRequest creates a new pending service request
func (s *serviceRequestService) CreateServiceRequest(ctx context.Context, req *CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	if req == nil {
		return nil, ErrMissingFields
	}

	if err := s.validator.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, fmt.Errorf("%w: %v", ErrMissingFields, validationErrs)
		}
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request := models.NewServiceRequest(s.newID(), req.CustomerName, req.ServiceType, req.Location, s.now())

	if err := s.repo.Put(ctx, request); err != nil {
		return nil, &StorageError{RequestID: request.RequestID, Err: err}
	}

	s.logger.WithFields(logrus.Fields{
		"request_id":   request.RequestID,
		"service_type": request.ServiceType,
	}).Debug("Service request stored")

	return request, nil
}
