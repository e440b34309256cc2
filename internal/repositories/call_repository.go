package repositories

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"call2fa/internal/models"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

type callRepository struct {
	mu    sync.RWMutex
	next  int64
	calls map[string]models.Call
}

// NewCallRepository returns an in-memory CallRepository. IDs are decimal and
// increase from firstID.
func NewCallRepository(firstID int64) CallRepository {
	return &callRepository{
		next:  firstID,
		calls: make(map[string]models.Call),
	}
}

func (r *callRepository) NextID(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := strconv.FormatInt(r.next, 10)
	r.next++
	return id
}

func (r *callRepository) Create(ctx context.Context, call *models.Call) error {
	if call == nil || call.ID == "" {
		return errors.New("call id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.calls[call.ID]; exists {
		return errors.New("call already exists: " + call.ID)
	}
	r.calls[call.ID] = *call
	return nil
}

func (r *callRepository) FindByID(ctx context.Context, id string) (*models.Call, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	call, ok := r.calls[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &call, nil
}
