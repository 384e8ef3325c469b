package ratings

import (
	"context"
	"errors"
	"testing"

	"companion-backend/internal/docs"
	"companion-backend/internal/profile"
)

func newTestRatingsService(t *testing.T) (*Service, *profile.MemoryRepo) {
	t.Helper()
	mentors, err := NewMemoryMentorsRepo()
	if err != nil {
		t.Fatalf("NewMemoryMentorsRepo: %v", err)
	}
	profiles := profile.NewMemoryRepo()
	svc := &Service{
		Ratings:  NewMemoryRatingsRepo(),
		Mentors:  mentors,
		Profiles: profiles,
	}
	return svc, profiles
}

func TestSubmitHighScoreSkipsMentors(t *testing.T) {
	svc, _ := newTestRatingsService(t)

	result, err := svc.Submit(context.Background(), "sess-1", "user-1", 5, "great")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Mentors != nil {
		t.Fatalf("high score must not match mentors, got %d", len(result.Mentors))
	}
	if result.Rating.Score != 5 || result.Rating.ID == "" {
		t.Fatalf("unexpected rating %+v", result.Rating)
	}
}

func TestSubmitLowScoreMatchesMentorPerCategory(t *testing.T) {
	svc, profiles := newTestRatingsService(t)
	if err := profiles.Upsert(context.Background(), profile.BusinessProfile{
		SessionID: "sess-1",
		UserID:    "user-1",
		Industry:  "Food and Beverage",
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	result, err := svc.Submit(context.Background(), "sess-1", "user-1", 2, "documents were too generic")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(result.Mentors) != len(docs.CategoryKeys()) {
		t.Fatalf("expected one mentor per category, got %d", len(result.Mentors))
	}
	for _, category := range docs.CategoryKeys() {
		m, ok := result.Mentors[category]
		if !ok {
			t.Fatalf("missing mentor for %s", category)
		}
		if m.Category != category {
			t.Fatalf("mentor %s has category %s, want %s", m.ID, m.Category, category)
		}
	}
	if result.Mentors["compliance"].ID != "mentor-comp-1" {
		t.Fatalf("expected food compliance mentor, got %s", result.Mentors["compliance"].ID)
	}
}

func TestSubmitLowScoreWithoutProfileStillMatches(t *testing.T) {
	svc, _ := newTestRatingsService(t)

	result, err := svc.Submit(context.Background(), "sess-absent", "user-1", 1, "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(result.Mentors) != len(docs.CategoryKeys()) {
		t.Fatalf("expected priority-based mentors, got %d", len(result.Mentors))
	}
}

func TestSubmitRejectsOutOfRangeScore(t *testing.T) {
	svc, _ := newTestRatingsService(t)

	for _, score := range []int{0, 6, -1} {
		if _, err := svc.Submit(context.Background(), "sess-1", "user-1", score, ""); !errors.Is(err, ErrInvalidScore) {
			t.Fatalf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}
}

func TestSubmitAppendsRatings(t *testing.T) {
	svc, _ := newTestRatingsService(t)

	if _, err := svc.Submit(context.Background(), "sess-1", "user-1", 4, "good"); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), "sess-1", "user-1", 2, "changed my mind"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	list, err := svc.Ratings.ListBySession(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ratings are append-only, expected 2 rows, got %d", len(list))
	}
}
