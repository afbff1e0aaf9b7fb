package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"aya-cleaning-api/internal/models"
	"aya-cleaning-api/internal/repositories"
)

const entityName = "service_request"

// ServiceRequestRepository writes service requests to the local SQLite database
type ServiceRequestRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewServiceRequestRepository creates a new SQLite service request repository
func NewServiceRequestRepository(db *sql.DB, logger *logrus.Logger) *ServiceRequestRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &ServiceRequestRepository{
		db:     db,
		logger: logger,
	}
}

// Put inserts request. Like a DynamoDB put it replaces an existing row with
// the same request ID instead of failing.
func (r *ServiceRequestRepository) Put(ctx context.Context, request *models.ServiceRequest) error {
	if err := request.Validate(); err != nil {
		return repositories.ValidationError(entityName, request.RequestID, err)
	}

	query := `
		INSERT OR REPLACE INTO service_requests (
			request_id, customer_name, service_type, location,
			status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		request.RequestID,
		request.CustomerName,
		request.ServiceType,
		request.Location,
		string(request.Status),
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		sentinel := repositories.ErrWrite
		if strings.Contains(err.Error(), "database is locked") {
			sentinel = repositories.ErrUnavailable
		}
		r.logger.WithError(err).WithField("request_id", request.RequestID).Debug("Service request insert failed")
		return repositories.PutError(entityName, request.RequestID, err.Error(), fmt.Errorf("%w: %w", sentinel, err))
	}

	return nil
}

// GetByID reads a stored request back. It is not part of the storage
// contract and exists for local inspection and tests.
func (r *ServiceRequestRepository) GetByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	query := `
		SELECT request_id, customer_name, service_type, location, status, created_at, updated_at
		FROM service_requests WHERE request_id = ?`

	var request models.ServiceRequest
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&request.RequestID,
		&request.CustomerName,
		&request.ServiceType,
		&request.Location,
		&status,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, repositories.NewRepositoryError("get", entityName, id, err)
	}
	request.Status = models.ServiceRequestStatus(status)

	return &request, nil
}

// Count returns the number of stored requests
func (r *ServiceRequestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM service_requests`).Scan(&count); err != nil {
		return 0, repositories.NewRepositoryError("count", entityName, "", err)
	}
	return count, nil
}

// Close closes the underlying database
func (r *ServiceRequestRepository) Close() error {
	return r.db.Close()
}
