package wizard

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) GetSession(ctx context.Context, sessionID string) (Session, error) {
	const query = `
SELECT session_id, user_id, question_index, completed, created_at, updated_at
FROM user_sessions
WHERE session_id = $1`

	var s Session
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&s.SessionID,
		&s.UserID,
		&s.QuestionIndex,
		&s.Completed,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}
	return s, nil
}

func (r *PGRepo) UpsertSession(ctx context.Context, s Session) error {
	const query = `
INSERT INTO user_sessions (session_id, user_id, question_index, completed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (session_id) DO UPDATE SET
	user_id = EXCLUDED.user_id,
	question_index = EXCLUDED.question_index,
	completed = EXCLUDED.completed,
	updated_at = EXCLUDED.updated_at`

	now := time.Now().UTC()
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	_, err := r.DB.ExecContext(ctx, query,
		s.SessionID,
		s.UserID,
		s.QuestionIndex,
		s.Completed,
		createdAt,
		now,
	)
	return err
}

func (r *PGRepo) AppendMessage(ctx context.Context, m ChatMessage) error {
	const query = `
INSERT INTO chat_messages (id, session_id, role, content, created_at)
VALUES ($1, $2, $3, $4, $5)`

	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.DB.ExecContext(ctx, query, m.ID, m.SessionID, m.Role, m.Content, createdAt)
	return err
}

func (r *PGRepo) ListMessages(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	const query = `
SELECT id, session_id, role, content, created_at
FROM chat_messages
WHERE session_id = $1
ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ChatMessage
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
