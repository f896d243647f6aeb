package interviews

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of InterviewsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Session // sessionID -> session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Session),
	}
}

// Create stores a new session.
func (r *MemoryRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[session.ID] = session
	return nil
}

// Get returns a session by ID, scoped to the owning user.
func (r *MemoryRepo) Get(ctx context.Context, userId, sessionID string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.data[sessionID]
	if !ok || session.UserID != userId {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// Update overwrites an existing session.
func (r *MemoryRepo) Update(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[session.ID]
	if !ok || existing.UserID != session.UserID {
		return ErrNotFound
	}
	r.data[session.ID] = session
	return nil
}

var _ InterviewsRepo = (*MemoryRepo)(nil)
