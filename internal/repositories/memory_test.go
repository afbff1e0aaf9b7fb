package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"aya-cleaning-api/internal/models"
)

func TestMemoryServiceRequestRepository_Put(t *testing.T) {
	repo := NewMemoryServiceRequestRepository()
	request := models.NewServiceRequest("id-1", "A", "Deep Clean", "Downtown", time.Now())

	if err := repo.Put(context.Background(), request); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	stored, ok := repo.Get("id-1")
	if !ok {
		t.Fatal("Get() did not find stored request")
	}
	if stored != *request {
		t.Errorf("stored = %+v, want %+v", stored, *request)
	}
	if repo.Len() != 1 || repo.Calls() != 1 {
		t.Errorf("Len() = %d, Calls() = %d, want 1, 1", repo.Len(), repo.Calls())
	}
}

func TestMemoryServiceRequestRepository_FailWith(t *testing.T) {
	repo := NewMemoryServiceRequestRepository()
	repo.FailWith(errors.New("ProvisionedThroughputExceeded"))

	request := models.NewServiceRequest("id-1", "A", "Deep Clean", "Downtown", time.Now())
	err := repo.Put(context.Background(), request)
	if err == nil {
		t.Fatal("Put() expected error")
	}
	if got := ErrorDetail(err); got != "ProvisionedThroughputExceeded" {
		t.Errorf("ErrorDetail() = %q, want ProvisionedThroughputExceeded", got)
	}
	if repo.Len() != 0 {
		t.Errorf("Len() = %d, want 0", repo.Len())
	}

	repo.FailWith(nil)
	if err := repo.Put(context.Background(), request); err != nil {
		t.Errorf("Put() after recovery failed: %v", err)
	}
}

func TestMemoryServiceRequestRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryServiceRequestRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	request := models.NewServiceRequest("id-1", "A", "Deep Clean", "Downtown", time.Now())
	err := repo.Put(ctx, request)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Put() error = %v, want context.Canceled", err)
	}
	if repo.Calls() != 0 {
		t.Errorf("Calls() = %d, want 0", repo.Calls())
	}
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), "boom"},
		{"put error", PutError("service_request", "id", "throttled", errors.New("boom")), "throttled"},
		{"put error without detail", PutError("service_request", "id", "", errors.New("boom")), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorDetail(tt.err); got != tt.want {
				t.Errorf("ErrorDetail() = %q, want %q", got, tt.want)
			}
		})
	}
}
