package wizard

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session tracks a user's position in the onboarding question sequence.
type Session struct {
	SessionID     string    `json:"sessionId"`
	UserID        string    `json:"userId"`
	QuestionIndex int       `json:"questionIndex"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ChatMessage is one line of wizard conversation history.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
