package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"aya-cleaning-api/internal/config"
	"aya-cleaning-api/internal/database"
	"aya-cleaning-api/internal/repositories"
	"aya-cleaning-api/internal/repositories/dynamo"
	"aya-cleaning-api/internal/repositories/sqlite"
	"aya-cleaning-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config                *config.Config
	Logger                *logrus.Logger
	ServiceRequestService services.ServiceRequestService

	// Internal dependencies
	repository repositories.ServiceRequestRepository
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger := config.NewLogger(cfg.Logging)

	repo, err := newRepository(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	container := &Container{
		Config:                cfg,
		Logger:                logger,
		ServiceRequestService: services.NewServiceRequestService(repo, services.WithLogger(logger)),
		repository:            repo,
	}

	logger.WithFields(logrus.Fields{
		"storage_backend": cfg.Storage.Backend,
		"table_name":      cfg.Storage.TableName,
		"deployment_mode": config.GetDeploymentMode(),
	}).Info("Container initialized")

	return container, nil
}

// newRepository builds the storage collaborator for the configured backend
func newRepository(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repositories.ServiceRequestRepository, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendDynamoDB:
		client, err := dynamo.NewClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, repositories.ConnectionError(err)
		}
		return dynamo.NewServiceRequestRepository(client, cfg.Storage.TableName, logger), nil

	case config.StorageBackendSQLite:
		dbCfg := database.DefaultConnectionConfig()
		dbCfg.DatabasePath = cfg.SQLite.Path
		dbCfg.MaxOpenConns = cfg.SQLite.MaxOpenConns
		dbCfg.Logger = logger
		db, err := database.Open(dbCfg)
		if err != nil {
			return nil, repositories.ConnectionError(err)
		}
		return sqlite.NewServiceRequestRepository(db, logger), nil

	case config.StorageBackendMemory:
		return repositories.NewMemoryServiceRequestRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %q", cfg.Storage.Backend)
	}
}

// Repository returns the storage collaborator
func (c *Container) Repository() repositories.ServiceRequestRepository {
	return c.repository
}

// Close cleans up all resources
func (c *Container) Close() error {
	if closer, ok := c.repository.(repositories.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close repository: %w", err)
		}
	}
	return nil
}
