package wizard

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for tests and local development.
type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	messages map[string][]ChatMessage
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sessions: make(map[string]Session),
		messages: make(map[string][]ChatMessage),
	}
}

func (r *MemoryRepo) GetSession(ctx context.Context, sessionID string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (r *MemoryRepo) UpsertSession(ctx context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.SessionID] = s
	return nil
}

func (r *MemoryRepo) AppendMessage(ctx context.Context, m ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[m.SessionID] = append(r.messages[m.SessionID], m)
	return nil
}

func (r *MemoryRepo) ListMessages(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := r.messages[sessionID]
	out := make([]ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
