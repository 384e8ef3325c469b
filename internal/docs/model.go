package docs

import "time"

const (
	StatusGenerating = "generating"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// GeneratedDocument is one synthesized guide, unique per (session, category).
// Re-generation overwrites the row in place; a terminal status only changes
// on a fresh generation request.
type GeneratedDocument struct {
	ID           string     `json:"id"`
	SessionID    string     `json:"sessionId"`
	UserID       string     `json:"userId"`
	Category     string     `json:"category"`
	Title        string     `json:"title"`
	KeyPoints    []string   `json:"keyPoints,omitempty"`
	Content      string     `json:"content,omitempty"`
	PDFURL       *string    `json:"pdfUrl,omitempty"`
	PDFKey       string     `json:"-"`
	Status       string     `json:"status"`
	ErrorCode    string     `json:"errorCode,omitempty"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// IsTerminal reports whether the document reached a terminal status.
func (d GeneratedDocument) IsTerminal() bool {
	return d.Status == StatusCompleted || d.Status == StatusFailed
}
