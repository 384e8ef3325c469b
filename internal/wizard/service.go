package wizard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"companion-backend/internal/generation"
	"companion-backend/internal/profile"
	"companion-backend/internal/shared/telemetry"
)

// Starter kicks off the document generation batch for a session.
type Starter interface {
	StartAll(ctx context.Context, sessionID, userID string) (generation.Summary, error)
}

// Service drives the linear onboarding wizard. Each answer is written into
// the business profile before the index advances; the last answer hands off
// to the generation batch.
type Service struct {
	Repo     Repo
	Profiles profile.Repo
	Starter  Starter
}

// Reply is what the wizard says back after one message.
type Reply struct {
	Message           string `json:"message"`
	QuestionIndex     int    `json:"questionIndex"`
	TotalQuestions    int    `json:"totalQuestions"`
	Completed         bool   `json:"completed"`
	GenerationStarted bool   `json:"generationStarted"`
}

// HandleMessage processes one user message. A blank message repeats the
// current question without advancing. The reply and the user's message are
// both appended to the chat history.
func (s *Service) HandleMessage(ctx context.Context, sessionID, userID, message string) (Reply, error) {
	if sessionID == "" || userID == "" {
		return Reply{}, errors.New("sessionID and userID are required")
	}

	sess, err := s.loadOrCreateSession(ctx, sessionID, userID)
	if err != nil {
		return Reply{}, err
	}

	if sess.Completed {
		return s.reply(ctx, sess, AlreadyCompletedMessage, false)
	}

	answer := strings.TrimSpace(message)
	if answer == "" {
		return s.reply(ctx, sess, Questions[sess.QuestionIndex].Prompt, false)
	}

	if err := s.appendMessage(ctx, sessionID, RoleUser, answer); err != nil {
		return Reply{}, err
	}

	if err := s.applyAnswer(ctx, sess, answer); err != nil {
		return Reply{}, err
	}

	sess.QuestionIndex++
	if sess.QuestionIndex >= len(Questions) {
		sess.Completed = true
	}
	if err := s.Repo.UpsertSession(ctx, sess); err != nil {
		return Reply{}, err
	}

	if sess.Completed {
		started := s.startGeneration(sessionID, userID)
		return s.reply(ctx, sess, GenerationStartedMessage, started)
	}
	return s.reply(ctx, sess, Questions[sess.QuestionIndex].Prompt, false)
}

// History returns the chat transcript for a session.
func (s *Service) History(ctx context.Context, sessionID string) ([]ChatMessage, error) {
	return s.Repo.ListMessages(ctx, sessionID)
}

func (s *Service) loadOrCreateSession(ctx context.Context, sessionID, userID string) (Session, error) {
	sess, err := s.Repo.GetSession(ctx, sessionID)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return Session{}, err
	}

	sess = Session{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.UpsertSession(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *Service) applyAnswer(ctx context.Context, sess Session, answer string) error {
	p, err := s.Profiles.GetBySession(ctx, sess.SessionID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			return err
		}
		p = profile.BusinessProfile{SessionID: sess.SessionID, UserID: sess.UserID}
	}

	Questions[sess.QuestionIndex].Apply(&p, answer)
	return s.Profiles.Upsert(ctx, p)
}

// startGeneration hands off asynchronously; the wizard reply never waits on
// document generation.
func (s *Service) startGeneration(sessionID, userID string) bool {
	if s.Starter == nil {
		return false
	}
	go func() {
		if _, err := s.Starter.StartAll(context.Background(), sessionID, userID); err != nil {
			telemetry.Error("wizard.generation_start", map[string]any{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}()
	return true
}

func (s *Service) reply(ctx context.Context, sess Session, message string, started bool) (Reply, error) {
	if err := s.appendMessage(ctx, sess.SessionID, RoleAssistant, message); err != nil {
		return Reply{}, err
	}
	return Reply{
		Message:           message,
		QuestionIndex:     sess.QuestionIndex,
		TotalQuestions:    len(Questions),
		Completed:         sess.Completed,
		GenerationStarted: started,
	}, nil
}

func (s *Service) appendMessage(ctx context.Context, sessionID, role, content string) error {
	return s.Repo.AppendMessage(ctx, ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
}

var _ Starter = (*generation.Orchestrator)(nil)
