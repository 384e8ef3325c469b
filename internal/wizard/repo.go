package wizard

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when no session row exists.
var ErrSessionNotFound = errors.New("wizard session not found")

// Repo persists wizard sessions and chat history.
type Repo interface {
	GetSession(ctx context.Context, sessionID string) (Session, error)
	UpsertSession(ctx context.Context, s Session) error
	AppendMessage(ctx context.Context, m ChatMessage) error
	ListMessages(ctx context.Context, sessionID string) ([]ChatMessage, error)
}
