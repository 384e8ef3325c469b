package ratings

import "time"

// Rating is one feedback event for a session's generated documents.
// Rows are append-only and never mutated after creation.
type Rating struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Mentor is a static advisor entry matched against low-rated sessions.
type Mentor struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Category   string   `json:"category" yaml:"category"`
	Industries []string `json:"industries" yaml:"industries"`
	Bio        string   `json:"bio" yaml:"bio"`
	Contact    string   `json:"contact" yaml:"contact"`
	Priority   int      `json:"priority" yaml:"priority"`
}
