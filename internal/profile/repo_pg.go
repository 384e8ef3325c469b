package profile

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

// Upsert inserts or overwrites the profile row keyed by session_id.
func (r *PGRepo) Upsert(ctx context.Context, p BusinessProfile) error {
	const query = `
INSERT INTO business_profiles (
	session_id, user_id, business_name, description, industry, location, brand_style, partners, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (session_id) DO UPDATE SET
	user_id = EXCLUDED.user_id,
	business_name = EXCLUDED.business_name,
	description = EXCLUDED.description,
	industry = EXCLUDED.industry,
	location = EXCLUDED.location,
	brand_style = EXCLUDED.brand_style,
	partners = EXCLUDED.partners,
	updated_at = EXCLUDED.updated_at`

	partnersJSON, err := json.Marshal(p.Partners)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err = r.DB.ExecContext(ctx, query,
		p.SessionID,
		p.UserID,
		p.BusinessName,
		p.Description,
		p.Industry,
		p.Location,
		p.BrandStyle,
		string(partnersJSON),
		createdAt,
		now,
	)
	return err
}

// GetBySession returns the profile for a session.
func (r *PGRepo) GetBySession(ctx context.Context, sessionID string) (BusinessProfile, error) {
	const query = `
SELECT session_id, user_id, business_name, description, industry, location, brand_style, partners, created_at, updated_at
FROM business_profiles
WHERE session_id = $1
LIMIT 1`

	var p BusinessProfile
	var businessName, description, industry, location, brandStyle sql.NullString
	var partnersRaw sql.NullString
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&p.SessionID,
		&p.UserID,
		&businessName,
		&description,
		&industry,
		&location,
		&brandStyle,
		&partnersRaw,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BusinessProfile{}, ErrNotFound
		}
		return BusinessProfile{}, err
	}
	if businessName.Valid {
		p.BusinessName = businessName.String
	}
	if description.Valid {
		p.Description = description.String
	}
	if industry.Valid {
		p.Industry = industry.String
	}
	if location.Valid {
		p.Location = location.String
	}
	if brandStyle.Valid {
		p.BrandStyle = brandStyle.String
	}
	if partnersRaw.Valid && partnersRaw.String != "" {
		if err := json.Unmarshal([]byte(partnersRaw.String), &p.Partners); err != nil {
			p.Partners = nil
		}
	}
	return p, nil
}

var _ Repo = (*PGRepo)(nil)
