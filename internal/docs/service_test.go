package docs

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"companion-backend/internal/llm"
	"companion-backend/internal/profile"
	"companion-backend/internal/shared/storage/object/local"
)

type staticLLM struct {
	resp string
	err  error
}

func (s staticLLM) Complete(ctx context.Context, input llm.CompletionInput) (string, error) {
	_ = ctx
	_ = input
	return s.resp, s.err
}

type failingStore struct{}

func (failingStore) SaveWithKey(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	return 0, errors.New("bucket unavailable")
}

func (failingStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, errors.New("bucket unavailable")
}

func (failingStore) URL(key string) string { return "" }

func longGuide(extra string) string {
	return "# Guide\n\n" + strings.Repeat("A practical paragraph about running the business. ", 30) + extra
}

func setupService(t *testing.T, client llm.Client) (*Service, *MemoryRepo, *profile.MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	profiles := profile.NewMemoryRepo()
	svc := &Service{
		Repo:     repo,
		Profiles: profiles,
		Store:    local.New(t.TempDir(), "/files"),
		LLM:      client,
	}
	return svc, repo, profiles
}

func seedProfile(t *testing.T, profiles *profile.MemoryRepo) profile.BusinessProfile {
	t.Helper()
	p := profile.BusinessProfile{
		SessionID:    "sess-1",
		UserID:       "user-1",
		BusinessName: "Acme Foods",
		Description:  "cloud kitchen",
		Industry:     "Food",
		Location:     "Mumbai",
		BrandStyle:   "warm orange",
		Partners:     []string{"A"},
	}
	if err := profiles.Upsert(context.Background(), p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}

func TestGenerateCompletes(t *testing.T) {
	svc, repo, profiles := setupService(t, staticLLM{resp: longGuide("Plan for GST and ROC annual filing.")})
	seedProfile(t, profiles)

	result, err := svc.Generate(context.Background(), "sess-1", "user-1", CategoryCompliance, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Document.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", result.Document.Status)
	}
	if result.Document.PDFURL == nil {
		t.Fatalf("expected pdf url")
	}
	if result.Warning != "" {
		t.Fatalf("unexpected warning %q", result.Warning)
	}
	if len(result.Document.KeyPoints) != 6 {
		t.Fatalf("expected 6 key points, got %d", len(result.Document.KeyPoints))
	}
	if result.Document.KeyPoints[0] != "Stay on top of GST registration and return filing" {
		t.Fatalf("expected GST point first, got %q", result.Document.KeyPoints[0])
	}
	if result.Document.KeyPoints[1] != "File ROC annual returns on schedule" {
		t.Fatalf("expected ROC point second, got %q", result.Document.KeyPoints[1])
	}

	stored, err := repo.GetBySessionCategory(context.Background(), "sess-1", CategoryCompliance)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.Status != StatusCompleted {
		t.Fatalf("expected stored row completed, got %s", stored.Status)
	}
}

func TestGenerateTwiceKeepsOneRow(t *testing.T) {
	svc, repo, profiles := setupService(t, staticLLM{resp: longGuide("first run")})
	seedProfile(t, profiles)

	if _, err := svc.Generate(context.Background(), "sess-1", "user-1", CategoryBranding, nil); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	svc.LLM = staticLLM{resp: longGuide("second run content wins")}
	if _, err := svc.Generate(context.Background(), "sess-1", "user-1", CategoryBranding, nil); err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	all, err := repo.ListBySession(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(all))
	}
	if !strings.Contains(all[0].Content, "second run content wins") {
		t.Fatalf("expected second generation to overwrite content")
	}
}

func TestGenerateShortContentFails(t *testing.T) {
	svc, repo, profiles := setupService(t, staticLLM{resp: "too short"})
	seedProfile(t, profiles)

	_, err := svc.Generate(context.Background(), "sess-1", "user-1", CategoryHR, nil)
	if !errors.Is(err, ErrShortContent) {
		t.Fatalf("expected ErrShortContent, got %v", err)
	}

	stored, err := repo.GetBySessionCategory(context.Background(), "sess-1", CategoryHR)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", stored.Status)
	}
	if stored.ErrorCode != ErrorCodeMalformed {
		t.Fatalf("expected %s, got %s", ErrorCodeMalformed, stored.ErrorCode)
	}
}

func TestGenerateStorageFailureIsDegradedSuccess(t *testing.T) {
	svc, repo, profiles := setupService(t, staticLLM{resp: longGuide("storage will fail")})
	seedProfile(t, profiles)
	svc.Store = failingStore{}

	result, err := svc.Generate(context.Background(), "sess-1", "user-1", CategoryRegistration, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Document.Status != StatusCompleted {
		t.Fatalf("expected completed despite storage failure, got %s", result.Document.Status)
	}
	if result.Document.PDFURL != nil {
		t.Fatalf("expected nil pdf url")
	}
	if result.Warning != WarningPDFUnavailable {
		t.Fatalf("expected warning, got %q", result.Warning)
	}

	stored, err := repo.GetBySessionCategory(context.Background(), "sess-1", CategoryRegistration)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.Status != StatusCompleted || stored.PDFURL != nil {
		t.Fatalf("expected completed row with null pdf, got %+v", stored)
	}
}

func TestGenerateConfigurationError(t *testing.T) {
	svc, repo, profiles := setupService(t, staticLLM{err: llm.ErrConfiguration})
	seedProfile(t, profiles)

	_, err := svc.Generate(context.Background(), "sess-1", "user-1", CategoryCompliance, nil)
	if !errors.Is(err, llm.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}

	stored, err := repo.GetBySessionCategory(context.Background(), "sess-1", CategoryCompliance)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.Status != StatusFailed || stored.ErrorCode != ErrorCodeConfiguration {
		t.Fatalf("expected failed row with configuration code, got %+v", stored)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	svc, repo, profiles := setupService(t, staticLLM{err: &llm.UpstreamError{Status: 503, Body: "unavailable"}})
	seedProfile(t, profiles)

	_, err := svc.Generate(context.Background(), "sess-1", "user-1", CategoryCompliance, nil)
	var upstream *llm.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}

	stored, _ := repo.GetBySessionCategory(context.Background(), "sess-1", CategoryCompliance)
	if stored.ErrorCode != ErrorCodeUpstream {
		t.Fatalf("expected upstream code, got %s", stored.ErrorCode)
	}
}

func TestGenerateMissingProfileUsesDefaults(t *testing.T) {
	svc, _, _ := setupService(t, staticLLM{resp: longGuide("defaults run")})

	result, err := svc.Generate(context.Background(), "sess-absent", "user-1", CategoryBranding, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Document.Status != StatusCompleted {
		t.Fatalf("expected completed with defaulted profile, got %s", result.Document.Status)
	}
}

func TestGenerateUnknownCategory(t *testing.T) {
	svc, _, _ := setupService(t, staticLLM{resp: longGuide("x")})
	if _, err := svc.Generate(context.Background(), "sess-1", "user-1", "finance", nil); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
