package docs

import "context"

// Repo defines persistence operations for generated documents. All writes
// are upserts keyed by the (session_id, category) unique constraint.
type Repo interface {
	Upsert(ctx context.Context, doc GeneratedDocument) error
	GetBySessionCategory(ctx context.Context, sessionID, category string) (GeneratedDocument, error)
	ListBySession(ctx context.Context, sessionID string) ([]GeneratedDocument, error)
}
