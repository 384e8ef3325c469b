package docs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or overwrites the row keyed by (session_id, category).
func (r *PGRepo) Upsert(ctx context.Context, doc GeneratedDocument) error {
	const query = `
INSERT INTO generated_documents (
	id, session_id, user_id, category, title, key_points, content, pdf_url,
	pdf_key, status, error_code, error_message, created_at, updated_at,
	completed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (session_id, category) DO UPDATE SET
	user_id = EXCLUDED.user_id,
	title = EXCLUDED.title,
	key_points = EXCLUDED.key_points,
	content = EXCLUDED.content,
	pdf_url = EXCLUDED.pdf_url,
	pdf_key = EXCLUDED.pdf_key,
	status = EXCLUDED.status,
	error_code = EXCLUDED.error_code,
	error_message = EXCLUDED.error_message,
	updated_at = EXCLUDED.updated_at,
	completed_at = EXCLUDED.completed_at`

	keyPointsJSON, err := json.Marshal(doc.KeyPoints)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	var pdfURL sql.NullString
	if doc.PDFURL != nil {
		pdfURL = sql.NullString{String: *doc.PDFURL, Valid: true}
	}
	var pdfKey sql.NullString
	if doc.PDFKey != "" {
		pdfKey = sql.NullString{String: doc.PDFKey, Valid: true}
	}
	var errorMessage sql.NullString
	if doc.ErrorMessage != nil {
		errorMessage = sql.NullString{String: *doc.ErrorMessage, Valid: true}
	}
	var errorCode sql.NullString
	if doc.ErrorCode != "" {
		errorCode = sql.NullString{String: doc.ErrorCode, Valid: true}
	}
	var completedAt sql.NullTime
	if doc.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *doc.CompletedAt, Valid: true}
	}

	_, err = r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.SessionID,
		doc.UserID,
		doc.Category,
		doc.Title,
		string(keyPointsJSON),
		doc.Content,
		pdfURL,
		pdfKey,
		doc.Status,
		errorCode,
		errorMessage,
		createdAt,
		now,
		completedAt,
	)
	return err
}

// GetBySessionCategory returns one row.
func (r *PGRepo) GetBySessionCategory(ctx context.Context, sessionID, category string) (GeneratedDocument, error) {
	const query = `
SELECT id, session_id, user_id, category, title, key_points, content, pdf_url,
       pdf_key, status, error_code, error_message, created_at, updated_at,
       completed_at
FROM generated_documents
WHERE session_id = $1 AND category = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, sessionID, category)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeneratedDocument{}, ErrNotFound
		}
		return GeneratedDocument{}, err
	}
	return doc, nil
}

// ListBySession returns all rows for a session.
func (r *PGRepo) ListBySession(ctx context.Context, sessionID string) ([]GeneratedDocument, error) {
	const query = `
SELECT id, session_id, user_id, category, title, key_points, content, pdf_url,
       pdf_key, status, error_code, error_message, created_at, updated_at,
       completed_at
FROM generated_documents
WHERE session_id = $1
ORDER BY category`

	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GeneratedDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (GeneratedDocument, error) {
	var doc GeneratedDocument
	var keyPointsRaw sql.NullString
	var content sql.NullString
	var pdfURL sql.NullString
	var pdfKey sql.NullString
	var errorCode sql.NullString
	var errorMessage sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&doc.ID,
		&doc.SessionID,
		&doc.UserID,
		&doc.Category,
		&doc.Title,
		&keyPointsRaw,
		&content,
		&pdfURL,
		&pdfKey,
		&doc.Status,
		&errorCode,
		&errorMessage,
		&doc.CreatedAt,
		&doc.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		return GeneratedDocument{}, err
	}
	if keyPointsRaw.Valid && keyPointsRaw.String != "" {
		if err := json.Unmarshal([]byte(keyPointsRaw.String), &doc.KeyPoints); err != nil {
			doc.KeyPoints = nil
		}
	}
	if content.Valid {
		doc.Content = content.String
	}
	if pdfURL.Valid {
		doc.PDFURL = &pdfURL.String
	}
	if pdfKey.Valid {
		doc.PDFKey = pdfKey.String
	}
	if errorCode.Valid {
		doc.ErrorCode = errorCode.String
	}
	if errorMessage.Valid {
		doc.ErrorMessage = &errorMessage.String
	}
	if completedAt.Valid {
		doc.CompletedAt = &completedAt.Time
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
