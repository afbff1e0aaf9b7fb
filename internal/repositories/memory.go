package repositories

import (
	"context"
	"sync"

	"aya-cleaning-api/internal/models"
)

// MemoryServiceRequestRepository keeps service requests in process memory.
// It backs STORAGE_BACKEND=memory and the tests.
type MemoryServiceRequestRepository struct {
	mu      sync.RWMutex
	items   map[string]models.ServiceRequest
	calls   int
	failErr error
}

// NewMemoryServiceRequestRepository creates an empty in-memory repository
func NewMemoryServiceRequestRepository() *MemoryServiceRequestRepository {
	return &MemoryServiceRequestRepository{
		items: make(map[string]models.ServiceRequest),
	}
}

// Put stores a copy of request, overwriting any item with the same ID
func (r *MemoryServiceRequestRepository) Put(ctx context.Context, request *models.ServiceRequest) error {
	if err := ctx.Err(); err != nil {
		return PutError("service_request", request.RequestID, "", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.failErr != nil {
		return PutError("service_request", request.RequestID, "", r.failErr)
	}

	r.items[request.RequestID] = *request
	return nil
}

// FailWith makes every following Put fail with err. Pass nil to recover.
func (r *MemoryServiceRequestRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failErr = err
}

// Get returns a stored request
func (r *MemoryServiceRequestRepository) Get(id string) (models.ServiceRequest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	return item, ok
}

// Len returns the number of stored requests
func (r *MemoryServiceRequestRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Calls returns how many times Put has been invoked
func (r *MemoryServiceRequestRepository) Calls() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.calls
}
