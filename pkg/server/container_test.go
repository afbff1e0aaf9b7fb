package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"aya-cleaning-api/internal/config"
	"aya-cleaning-api/internal/repositories"
	"aya-cleaning-api/internal/repositories/sqlite"
	"aya-cleaning-api/internal/services"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		Storage: config.StorageConfig{
			Backend:   backend,
			TableName: config.DefaultTableName,
		},
		Logging: config.LoggingConfig{Level: "warn"},
	}
}

// TestNewContainer_Memory verifies that the container wires the service to the store
func TestNewContainer_Memory(t *testing.T) {
	container, err := NewContainer(context.Background(), testConfig(config.StorageBackendMemory))
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	if container.ServiceRequestService == nil {
		t.Fatal("ServiceRequestService is nil")
	}
	if container.Logger == nil {
		t.Fatal("Logger is nil")
	}

	repo, ok := container.Repository().(*repositories.MemoryServiceRequestRepository)
	if !ok {
		t.Fatalf("Repository() = %T, want memory repository", container.Repository())
	}

	_, err = container.ServiceRequestService.CreateServiceRequest(context.Background(), &services.CreateServiceRequestRequest{
		CustomerName: "A",
		ServiceType:  "Deep Clean",
		Location:     "Downtown",
	})
	if err != nil {
		t.Fatalf("CreateServiceRequest() failed: %v", err)
	}
	if repo.Len() != 1 {
		t.Errorf("Len() = %d, want 1", repo.Len())
	}
}

func TestNewContainer_SQLite(t *testing.T) {
	cfg := testConfig(config.StorageBackendSQLite)
	cfg.SQLite = config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "container.db"), MaxOpenConns: 1}

	container, err := NewContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if _, ok := container.Repository().(*sqlite.ServiceRequestRepository); !ok {
		t.Errorf("Repository() = %T, want sqlite repository", container.Repository())
	}

	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

func TestNewContainer_UnsupportedBackend(t *testing.T) {
	_, err := NewContainer(context.Background(), testConfig("postgres"))
	if err == nil {
		t.Fatal("NewContainer() expected error for unsupported backend")
	}
	if repositories.IsConnection(err) {
		t.Errorf("IsConnection(%v) = true, want false", err)
	}
}

func TestNewContainer_SQLiteUnreachable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	cfg := testConfig(config.StorageBackendSQLite)
	cfg.SQLite = config.SQLiteConfig{Path: filepath.Join(blocker, "container.db"), MaxOpenConns: 1}

	_, err := NewContainer(context.Background(), cfg)
	if !repositories.IsConnection(err) {
		t.Errorf("NewContainer() error = %v, want connection error", err)
	}
}
