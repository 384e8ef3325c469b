package wizard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"companion-backend/internal/shared/server/respond"
)

// Handler exposes the wizard over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches wizard routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat/message", h.message)
	rg.GET("/chat/history", h.history)
}

type messageRequest struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Message   string `json:"message"`
}

func (h *Handler) message(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.SessionID == "" || req.UserID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId and userId are required", nil)
		return
	}

	reply, err := h.Svc.HandleMessage(c.Request.Context(), req.SessionID, req.UserID, req.Message)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process message", nil)
		return
	}
	respond.OK(c, reply)
}

func (h *Handler) history(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId is required", nil)
		return
	}

	messages, err := h.Svc.History(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load history", nil)
		return
	}
	respond.OK(c, gin.H{"messages": messages})
}
