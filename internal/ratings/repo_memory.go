package ratings

import (
	"context"
	"sync"
)

// MemoryRatingsRepo is an in-memory RatingsRepo for tests and local runs.
type MemoryRatingsRepo struct {
	mu        sync.RWMutex
	bySession map[string][]Rating
}

// NewMemoryRatingsRepo constructs a MemoryRatingsRepo.
func NewMemoryRatingsRepo() *MemoryRatingsRepo {
	return &MemoryRatingsRepo{bySession: make(map[string][]Rating)}
}

func (r *MemoryRatingsRepo) Create(ctx context.Context, rating Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySession[rating.SessionID] = append(r.bySession[rating.SessionID], rating)
	return nil
}

func (r *MemoryRatingsRepo) ListBySession(ctx context.Context, sessionID string) ([]Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.bySession[sessionID]
	out := make([]Rating, len(list))
	copy(out, list)
	return out, nil
}

// MemoryMentorsRepo serves the embedded mentor table.
type MemoryMentorsRepo struct {
	mentors []Mentor
}

// NewMemoryMentorsRepo loads the embedded seed.
func NewMemoryMentorsRepo() (*MemoryMentorsRepo, error) {
	mentors, err := SeedMentors()
	if err != nil {
		return nil, err
	}
	return &MemoryMentorsRepo{mentors: mentors}, nil
}

func (r *MemoryMentorsRepo) ListByCategory(ctx context.Context, category string) ([]Mentor, error) {
	var out []Mentor
	for _, m := range r.mentors {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MemoryMentorsRepo) ListAll(ctx context.Context) ([]Mentor, error) {
	out := make([]Mentor, len(r.mentors))
	copy(out, r.mentors)
	return out, nil
}

var (
	_ RatingsRepo = (*MemoryRatingsRepo)(nil)
	_ MentorsRepo = (*MemoryMentorsRepo)(nil)
)
