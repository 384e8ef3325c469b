package generation

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"companion-backend/internal/docs"
	"companion-backend/internal/shared/server/respond"
	"companion-backend/internal/shared/telemetry"
)

// Handler exposes batch generation over HTTP.
type Handler struct {
	Orch    *Orchestrator
	limiter *pollLimiter
}

// NewHandler constructs a Handler with the default poll limiter.
func NewHandler(orch *Orchestrator) *Handler {
	return &Handler{
		Orch:    orch,
		limiter: newPollLimiter(pollLimitWindow, nil),
	}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generation/start", h.start)
	rg.GET("/generation/status", h.status)
}

type startRequest struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

// start kicks off the batch and returns immediately; the frontend follows up
// on /generation/status.
func (h *Handler) start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.SessionID == "" || req.UserID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId and userId are required", nil)
		return
	}
	c.Set("sessionId", req.SessionID)

	go func() {
		if _, err := h.Orch.StartAll(context.Background(), req.SessionID, req.UserID); err != nil {
			telemetry.Error("generation.start", map[string]any{
				"session_id": req.SessionID,
				"error":      err.Error(),
			})
		}
	}()

	respond.JSON(c, http.StatusAccepted, gin.H{
		"status":     "started",
		"categories": docs.CategoryKeys(),
	})
}

func (h *Handler) status(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId is required", nil)
		return
	}
	c.Set("sessionId", sessionID)

	if !h.limiter.Allow(sessionID) {
		c.Header("Retry-After", strconv.Itoa(h.limiter.RetryAfterSeconds()))
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Polling too fast; slow down.", nil)
		return
	}

	summary, err := h.Orch.Status(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read generation status", nil)
		return
	}
	respond.OK(c, summary)
}
