package docs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"companion-backend/internal/llm"
	"companion-backend/internal/pdfrender"
	"companion-backend/internal/profile"
	"companion-backend/internal/shared/metrics"
	"companion-backend/internal/shared/storage/object"
	"companion-backend/internal/shared/telemetry"
)

// A generated body shorter than this is treated as a generation failure, not
// an exception.
const minContentLength = 100

// Service runs single-category document generation.
type Service struct {
	Repo     Repo
	Profiles profile.Repo
	Store    object.Store
	LLM      llm.Client
	Model    string
}

// Result is the outcome of one generation run.
type Result struct {
	Document GeneratedDocument
	Warning  string
}

// Generate produces a terminal GeneratedDocument row for one category.
// snapshot may carry an already-loaded profile; when nil the profile is
// fetched by session, and a missing profile falls back to documented
// defaults rather than failing.
//
// Per-generation errors are written to the row as a failed status before
// being returned; only a persistence failure on the upsert itself escapes
// without a terminal row.
func (s *Service) Generate(ctx context.Context, sessionID, userID, category string, snapshot *profile.BusinessProfile) (Result, error) {
	if sessionID == "" || userID == "" {
		return Result{}, errors.New("sessionID and userID are required")
	}
	cat, ok := CategoryByKey(category)
	if !ok {
		return Result{}, ErrUnknownCategory
	}

	doc := GeneratedDocument{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		UserID:    userID,
		Category:  cat.Key,
		Title:     cat.Title,
		Status:    StatusGenerating,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Upsert(ctx, doc); err != nil {
		return Result{}, fmt.Errorf("save placeholder: %w", err)
	}
	metrics.IncGenerationStarted()
	startedAt := time.Now()

	p := s.loadProfile(ctx, sessionID, snapshot)

	prompt, _ := llm.CategoryPrompt(cat.Key)
	content, err := s.LLM.Complete(ctx, llm.CompletionInput{
		SystemPrompt: prompt,
		UserPrompt:   profile.ContextBlock(p),
		Temperature:  0.7,
		MaxTokens:    3000,
	})
	if err != nil {
		return Result{}, s.failDocument(ctx, doc, err)
	}
	if len(strings.TrimSpace(content)) <= minContentLength {
		return Result{}, s.failDocument(ctx, doc, fmt.Errorf("%w: %d chars", ErrShortContent, len(content)))
	}

	doc.Content = content
	doc.KeyPoints = ExtractKeyPoints(cat, content)

	warning := ""
	pdfURL, pdfKey := s.renderAndUpload(ctx, cat, p, doc)
	if pdfURL == "" {
		warning = WarningPDFUnavailable
	} else {
		doc.PDFURL = &pdfURL
		doc.PDFKey = pdfKey
	}

	now := time.Now().UTC()
	doc.Status = StatusCompleted
	doc.CompletedAt = &now
	if err := s.Repo.Upsert(ctx, doc); err != nil {
		return Result{}, fmt.Errorf("save document: %w", err)
	}
	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(float64(time.Since(startedAt).Milliseconds()))

	telemetry.Info("document.status", map[string]any{
		"session_id": sessionID,
		"user_id":    userID,
		"category":   cat.Key,
		"status":     StatusCompleted,
		"model":      s.Model,
		"pdf":        doc.PDFURL != nil,
	})
	return Result{Document: doc, Warning: warning}, nil
}

func (s *Service) loadProfile(ctx context.Context, sessionID string, snapshot *profile.BusinessProfile) profile.BusinessProfile {
	if snapshot != nil {
		return *snapshot
	}
	p, err := s.Profiles.GetBySession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			telemetry.Error("document.profile_load", map[string]any{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
		return profile.BusinessProfile{SessionID: sessionID}
	}
	return p
}

// renderAndUpload renders the PDF and stores it at the deterministic key,
// returning the public URL and the key the bytes actually live under. Any
// failure here degrades the result to content-without-PDF; it never fails
// the document.
func (s *Service) renderAndUpload(ctx context.Context, cat Category, p profile.BusinessProfile, doc GeneratedDocument) (string, string) {
	if s.Store == nil {
		return "", ""
	}
	data, err := pdfrender.Render(pdfrender.Input{
		Title:        cat.Title,
		BusinessName: profile.DisplayName(p),
		GeneratedAt:  time.Now().UTC(),
		Body:         doc.Content,
	})
	if err != nil {
		telemetry.Error("document.pdf_render", map[string]any{
			"session_id": doc.SessionID,
			"category":   cat.Key,
			"error":      err.Error(),
		})
		return "", ""
	}

	key := StorageKey(doc.UserID, cat.Key, time.Now().UTC())
	if _, err := s.Store.SaveWithKey(ctx, key, "application/pdf", bytes.NewReader(data)); err != nil {
		telemetry.Error("document.pdf_upload", map[string]any{
			"session_id": doc.SessionID,
			"category":   cat.Key,
			"error":      err.Error(),
		})
		return "", ""
	}
	return s.Store.URL(key), key
}

// failDocument writes the failed row with a structured diagnostic and
// returns the original error for the handler to classify.
func (s *Service) failDocument(ctx context.Context, doc GeneratedDocument, cause error) error {
	metrics.IncGenerationFailed()
	code := ClassifyError(cause)
	msg := sanitizeError(cause)
	now := time.Now().UTC()

	doc.Status = StatusFailed
	doc.ErrorCode = code
	doc.ErrorMessage = &msg
	doc.CompletedAt = &now
	doc.Content = ""
	doc.KeyPoints = nil
	doc.PDFURL = nil
	doc.PDFKey = ""

	if updateErr := s.Repo.Upsert(context.Background(), doc); updateErr != nil {
		telemetry.Error("document.fail_write", map[string]any{
			"session_id": doc.SessionID,
			"category":   doc.Category,
			"error":      updateErr.Error(),
			"cause":      msg,
		})
	}
	telemetry.Info("document.status", map[string]any{
		"session_id": doc.SessionID,
		"user_id":    doc.UserID,
		"category":   doc.Category,
		"status":     StatusFailed,
		"error_code": code,
	})
	return cause
}

// StorageKey builds the deterministic object key for a category's PDF.
func StorageKey(userID, category string, date time.Time) string {
	return fmt.Sprintf("%s/%s/%s-guide-%s.pdf", userID, category, category, date.Format("2006-01-02"))
}

// ClassifyError maps a generation error to its diagnostic code.
func ClassifyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, llm.ErrConfiguration):
		return ErrorCodeConfiguration
	case isUpstream(err):
		return ErrorCodeUpstream
	case errors.Is(err, llm.ErrMalformedResponse), errors.Is(err, ErrShortContent):
		return ErrorCodeMalformed
	default:
		return ErrorCodeInternal
	}
}

func isUpstream(err error) bool {
	var upstream *llm.UpstreamError
	return errors.As(err, &upstream)
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
