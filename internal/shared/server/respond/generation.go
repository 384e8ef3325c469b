package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"companion-backend/internal/shared/telemetry"
)

// GenerationErrorBody is the error object the document-generation endpoints
// return: a diagnostic error string, a message safe to show the user, and
// structured details.
type GenerationErrorBody struct {
	Error       string      `json:"error"`
	UserMessage string      `json:"userMessage"`
	Details     interface{} `json:"details,omitempty"`
}

// GenerationError sends the generation-specific error shape with HTTP 500.
func GenerationError(c *gin.Context, err error, userMessage string, details interface{}) {
	telemetry.Error("generation.error", map[string]any{
		"error":      err.Error(),
		"message":    userMessage,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString("requestId"),
	})
	c.AbortWithStatusJSON(http.StatusInternalServerError, GenerationErrorBody{
		Error:       err.Error(),
		UserMessage: userMessage,
		Details:     details,
	})
}
