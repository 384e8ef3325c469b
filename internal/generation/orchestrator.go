package generation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"companion-backend/internal/docs"
	"companion-backend/internal/profile"
	"companion-backend/internal/shared/telemetry"
)

const (
	defaultPollInterval    = 2 * time.Second
	defaultPollMaxAttempts = 30
)

// Orchestrator fans out one generation run per document category and tracks
// the batch until every row settles.
type Orchestrator struct {
	Docs     *docs.Service
	Profiles profile.Repo

	PollInterval    time.Duration
	PollMaxAttempts int
}

// NewOrchestrator constructs an Orchestrator with the given poll tuning.
// Non-positive values fall back to the defaults.
func NewOrchestrator(svc *docs.Service, profiles profile.Repo, interval time.Duration, maxAttempts int) *Orchestrator {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultPollMaxAttempts
	}
	return &Orchestrator{
		Docs:            svc,
		Profiles:        profiles,
		PollInterval:    interval,
		PollMaxAttempts: maxAttempts,
	}
}

// Summary reports the batch state for one session.
type Summary struct {
	Done     bool              `json:"done"`
	TimedOut bool              `json:"timedOut"`
	Statuses map[string]string `json:"statuses"`
}

// StartAll generates all document categories for a session. Placeholder rows
// go in first so status polling sees every category immediately, then one
// goroutine per category runs to its own terminal state. A failed category
// never aborts its siblings and is never retried here.
//
// The call blocks on a bounded poll of the stored rows and returns the batch
// summary; TimedOut means some rows were still generating when the poll
// ceiling was reached, not that their goroutines were cancelled.
func (o *Orchestrator) StartAll(ctx context.Context, sessionID, userID string) (Summary, error) {
	if sessionID == "" || userID == "" {
		return Summary{}, errors.New("sessionID and userID are required")
	}

	snapshot := o.loadSnapshot(ctx, sessionID)

	now := time.Now().UTC()
	for _, key := range docs.CategoryKeys() {
		cat, _ := docs.CategoryByKey(key)
		placeholder := docs.GeneratedDocument{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			UserID:    userID,
			Category:  cat.Key,
			Title:     cat.Title,
			Status:    docs.StatusGenerating,
			CreatedAt: now,
		}
		if err := o.Docs.Repo.Upsert(ctx, placeholder); err != nil {
			return Summary{}, err
		}
	}

	for _, key := range docs.CategoryKeys() {
		category := key
		go func() {
			// Generation outlives the request that kicked it off.
			_, err := o.Docs.Generate(context.Background(), sessionID, userID, category, snapshot)
			if err != nil {
				telemetry.Error("generation.category", map[string]any{
					"session_id": sessionID,
					"category":   category,
					"error":      err.Error(),
				})
			}
		}()
	}

	return o.poll(ctx, sessionID)
}

// Status reads the stored rows without waiting.
func (o *Orchestrator) Status(ctx context.Context, sessionID string) (Summary, error) {
	rows, err := o.Docs.Repo.ListBySession(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(rows), nil
}

func (o *Orchestrator) poll(ctx context.Context, sessionID string) (Summary, error) {
	ticker := time.NewTicker(o.PollInterval)
	defer ticker.Stop()

	var last Summary
	for attempt := 0; attempt < o.PollMaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			last.TimedOut = true
			return last, ctx.Err()
		case <-ticker.C:
		}

		summary, err := o.Status(ctx, sessionID)
		if err != nil {
			telemetry.Error("generation.poll", map[string]any{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			continue
		}
		last = summary
		if summary.Done {
			telemetry.Info("generation.batch", map[string]any{
				"session_id": sessionID,
				"statuses":   summary.Statuses,
			})
			return summary, nil
		}
	}

	last.TimedOut = true
	telemetry.Error("generation.batch_timeout", map[string]any{
		"session_id": sessionID,
		"statuses":   last.Statuses,
	})
	return last, nil
}

// loadSnapshot fetches the profile once so the four generators share one
// consistent view. An incomplete or missing profile is a warning only.
func (o *Orchestrator) loadSnapshot(ctx context.Context, sessionID string) *profile.BusinessProfile {
	p, err := o.Profiles.GetBySession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			telemetry.Error("generation.profile_load", map[string]any{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		} else {
			telemetry.Info("generation.profile_missing", map[string]any{
				"session_id": sessionID,
			})
		}
		return nil
	}
	if missing := p.MissingFields(); len(missing) > 0 {
		telemetry.Info("generation.profile_incomplete", map[string]any{
			"session_id": sessionID,
			"missing":    missing,
		})
	}
	return &p
}

func summarize(rows []docs.GeneratedDocument) Summary {
	statuses := make(map[string]string, len(docs.CategoryKeys()))
	terminal := make(map[string]bool, len(rows))
	for _, row := range rows {
		statuses[row.Category] = row.Status
		terminal[row.Category] = row.IsTerminal()
	}

	done := len(statuses) > 0
	for _, key := range docs.CategoryKeys() {
		if !terminal[key] {
			done = false
		}
	}
	return Summary{Done: done, Statuses: statuses}
}
