package profile

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores profiles in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu        sync.RWMutex
	bySession map[string]BusinessProfile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{bySession: make(map[string]BusinessProfile)}
}

// Upsert inserts or overwrites the profile for a session.
func (r *MemoryRepo) Upsert(ctx context.Context, p BusinessProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.bySession[p.SessionID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = time.Now().UTC()
	r.bySession[p.SessionID] = p
	return nil
}

// GetBySession returns the profile for a session.
func (r *MemoryRepo) GetBySession(ctx context.Context, sessionID string) (BusinessProfile, error) {
	if err := ctx.Err(); err != nil {
		return BusinessProfile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.bySession[sessionID]
	if !ok {
		return BusinessProfile{}, ErrNotFound
	}
	return p, nil
}

var _ Repo = (*MemoryRepo)(nil)
