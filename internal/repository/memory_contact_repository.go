package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/portfolio/backend/internal/model"
)

// MemContactRepository keeps contact messages for the lifetime of the process.
// Growth is unbounded; there is no retention policy.
type MemContactRepository struct {
	mu       sync.RWMutex
	nextID   int64
	messages []*model.ContactMessage
}

var _ ContactRepository = (*MemContactRepository)(nil)

// NewMemContactRepository creates an empty repository whose first id is "1".
func NewMemContactRepository() *MemContactRepository {
	return &MemContactRepository{nextID: 1}
}

// Save assigns the next sequential id and appends a copy of msg.
func (r *MemContactRepository) Save(_ context.Context, msg *model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = strconv.FormatInt(r.nextID, 10)
	r.nextID++
	stored := *msg
	r.messages = append(r.messages, &stored)
	return nil
}

// List returns all messages ordered by CreatedAt descending.
// Messages with equal timestamps keep reverse insertion order.
func (r *MemContactRepository) List(_ context.Context) ([]*model.ContactMessage, error) {
	r.mu.RLock()
	out := make([]*model.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := *r.messages[i]
		out = append(out, &m)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
