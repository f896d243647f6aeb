package history

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of HistoryRepo. Entries are
// kept oldest-first per user.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Entry
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Entry),
	}
}

// Append stores an entry and drops the oldest beyond limit.
func (r *MemoryRepo) Append(ctx context.Context, entry Entry, limit int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := append(r.data[entry.UserID], entry)
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	r.data[entry.UserID] = entries
	return nil
}

// ListByUser returns entries newest-first, at most limit.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := r.data[userId]
	out := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

var _ HistoryRepo = (*MemoryRepo)(nil)
