package ratings

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// PGRatingsRepo implements RatingsRepo using Postgres.
type PGRatingsRepo struct {
	DB *sql.DB
}

func (r *PGRatingsRepo) Create(ctx context.Context, rating Rating) error {
	const query = `
INSERT INTO service_ratings (id, session_id, user_id, score, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	createdAt := rating.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	var comment sql.NullString
	if rating.Comment != "" {
		comment = sql.NullString{String: rating.Comment, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		rating.ID,
		rating.SessionID,
		rating.UserID,
		rating.Score,
		comment,
		createdAt,
	)
	return err
}

func (r *PGRatingsRepo) ListBySession(ctx context.Context, sessionID string) ([]Rating, error) {
	const query = `
SELECT id, session_id, user_id, score, comment, created_at
FROM service_ratings
WHERE session_id = $1
ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Rating
	for rows.Next() {
		var rating Rating
		var comment sql.NullString
		if err := rows.Scan(&rating.ID, &rating.SessionID, &rating.UserID, &rating.Score, &comment, &rating.CreatedAt); err != nil {
			return nil, err
		}
		if comment.Valid {
			rating.Comment = comment.String
		}
		out = append(out, rating)
	}
	return out, rows.Err()
}

// PGMentorsRepo implements MentorsRepo using Postgres. The table is seeded
// by migration from the same rows as the embedded YAML.
type PGMentorsRepo struct {
	DB *sql.DB
}

func (r *PGMentorsRepo) ListByCategory(ctx context.Context, category string) ([]Mentor, error) {
	const query = `
SELECT id, name, category, industries, bio, contact, priority
FROM mentors
WHERE category = $1
ORDER BY priority, id`

	rows, err := r.DB.QueryContext(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMentors(rows)
}

func (r *PGMentorsRepo) ListAll(ctx context.Context) ([]Mentor, error) {
	const query = `
SELECT id, name, category, industries, bio, contact, priority
FROM mentors
ORDER BY category, priority, id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMentors(rows)
}

func scanMentors(rows *sql.Rows) ([]Mentor, error) {
	var out []Mentor
	for rows.Next() {
		var m Mentor
		var industriesRaw sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &industriesRaw, &m.Bio, &m.Contact, &m.Priority); err != nil {
			return nil, err
		}
		if industriesRaw.Valid && industriesRaw.String != "" {
			if err := json.Unmarshal([]byte(industriesRaw.String), &m.Industries); err != nil {
				m.Industries = nil
			}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

var (
	_ RatingsRepo = (*PGRatingsRepo)(nil)
	_ MentorsRepo = (*PGMentorsRepo)(nil)
)
