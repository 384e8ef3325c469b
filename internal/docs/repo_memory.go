package docs

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores generated documents in memory and is safe for concurrent
// use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byKey  map[string]GeneratedDocument
	byKeys map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byKey:  make(map[string]GeneratedDocument),
		byKeys: make(map[string][]string),
	}
}

func docKey(sessionID, category string) string {
	return sessionID + "|" + category
}

// Upsert inserts or overwrites the row for (session, category).
func (r *MemoryRepo) Upsert(ctx context.Context, doc GeneratedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := docKey(doc.SessionID, doc.Category)
	if existing, ok := r.byKey[key]; ok {
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
	} else {
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = time.Now().UTC()
		}
		r.byKeys[doc.SessionID] = append(r.byKeys[doc.SessionID], key)
	}
	doc.UpdatedAt = time.Now().UTC()
	r.byKey[key] = doc
	return nil
}

// GetBySessionCategory returns one row.
func (r *MemoryRepo) GetBySessionCategory(ctx context.Context, sessionID, category string) (GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedDocument{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.byKey[docKey(sessionID, category)]
	if !ok {
		return GeneratedDocument{}, ErrNotFound
	}
	return doc, nil
}

// ListBySession returns all rows for a session in category order.
func (r *MemoryRepo) ListBySession(ctx context.Context, sessionID string) ([]GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := r.byKeys[sessionID]
	out := make([]GeneratedDocument, 0, len(keys))
	for _, k := range keys {
		if doc, ok := r.byKey[k]; ok {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return categoryOrder(out[i].Category) < categoryOrder(out[j].Category)
	})
	return out, nil
}

func categoryOrder(category string) int {
	for i, key := range CategoryKeys() {
		if key == category {
			return i
		}
	}
	return len(CategoryKeys())
}

var _ Repo = (*MemoryRepo)(nil)
