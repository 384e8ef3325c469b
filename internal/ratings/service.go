package ratings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"companion-backend/internal/docs"
	"companion-backend/internal/profile"
	"companion-backend/internal/shared/telemetry"
)

// A score at or below this threshold triggers mentor matching.
const mentorThreshold = 3

// ErrInvalidScore rejects scores outside 1 through 5.
var ErrInvalidScore = errors.New("score must be between 1 and 5")

// Service records feedback and matches mentors for unhappy sessions.
type Service struct {
	Ratings  RatingsRepo
	Mentors  MentorsRepo
	Profiles profile.Repo
}

// SubmitResult is the outcome of one rating submission. Mentors is non-nil
// only when the score crossed the matching threshold.
type SubmitResult struct {
	Rating  Rating            `json:"rating"`
	Mentors map[string]Mentor `json:"mentors,omitempty"`
}

// Submit appends the rating and, on a low score, returns one best-fit
// mentor per document category.
func (s *Service) Submit(ctx context.Context, sessionID, userID string, score int, comment string) (SubmitResult, error) {
	if sessionID == "" || userID == "" {
		return SubmitResult{}, errors.New("sessionID and userID are required")
	}
	if score < 1 || score > 5 {
		return SubmitResult{}, ErrInvalidScore
	}

	rating := Rating{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		UserID:    userID,
		Score:     score,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Ratings.Create(ctx, rating); err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{Rating: rating}
	if score <= mentorThreshold {
		result.Mentors = s.matchMentors(ctx, sessionID)
	}

	telemetry.Info("rating.submitted", map[string]any{
		"session_id": sessionID,
		"score":      score,
		"mentors":    len(result.Mentors),
	})
	return result, nil
}

// matchMentors resolves one mentor per category. A mentor lookup failure
// degrades to no suggestion for that category rather than failing the
// rating, which is already persisted.
func (s *Service) matchMentors(ctx context.Context, sessionID string) map[string]Mentor {
	industry := ""
	if p, err := s.Profiles.GetBySession(ctx, sessionID); err == nil {
		industry = p.Industry
	}

	matched := make(map[string]Mentor)
	for _, category := range docs.CategoryKeys() {
		mentors, err := s.Mentors.ListByCategory(ctx, category)
		if err != nil {
			telemetry.Error("rating.mentor_lookup", map[string]any{
				"session_id": sessionID,
				"category":   category,
				"error":      err.Error(),
			})
			continue
		}
		if best, ok := BestMatch(mentors, industry); ok {
			matched[category] = best
		}
	}
	return matched
}
