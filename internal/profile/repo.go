package profile

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no profile exists for a session.
var ErrNotFound = errors.New("profile not found")

// Repo defines persistence operations for business profiles.
type Repo interface {
	// Upsert inserts or overwrites the profile row keyed by session.
	Upsert(ctx context.Context, p BusinessProfile) error
	GetBySession(ctx context.Context, sessionID string) (BusinessProfile, error)
}
