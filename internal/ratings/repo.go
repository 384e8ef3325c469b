package ratings

import "context"

// RatingsRepo persists feedback events.
type RatingsRepo interface {
	Create(ctx context.Context, r Rating) error
	ListBySession(ctx context.Context, sessionID string) ([]Rating, error)
}

// MentorsRepo reads the static mentor table.
type MentorsRepo interface {
	ListByCategory(ctx context.Context, category string) ([]Mentor, error)
	ListAll(ctx context.Context) ([]Mentor, error)
}
