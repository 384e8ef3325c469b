package ratings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"companion-backend/internal/shared/server/respond"
)

// Handler exposes ratings and mentors over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches rating routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ratings", h.submit)
	rg.GET("/mentors", h.mentors)
}

type submitRequest struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.SessionID == "" || req.UserID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId and userId are required", nil)
		return
	}

	result, err := h.Svc.Submit(c.Request.Context(), req.SessionID, req.UserID, req.Score, req.Comment)
	if err != nil {
		if errors.Is(err, ErrInvalidScore) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "score must be between 1 and 5", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save rating", nil)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) mentors(c *gin.Context) {
	category := c.Query("category")

	var (
		mentors []Mentor
		err     error
	)
	if category == "" {
		mentors, err = h.Svc.Mentors.ListAll(c.Request.Context())
	} else {
		mentors, err = h.Svc.Mentors.ListByCategory(c.Request.Context(), category)
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load mentors", nil)
		return
	}
	respond.OK(c, gin.H{"mentors": mentors})
}
