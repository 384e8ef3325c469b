package docs

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"companion-backend/internal/llm"
	"companion-backend/internal/profile"
	"companion-backend/internal/shared/server/respond"
	"companion-backend/internal/shared/storage/object"
)

// Handler wires HTTP handlers to the document generation service.
type Handler struct {
	Svc   *Service
	Store object.Store
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, store object.Store) *Handler {
	return &Handler{Svc: svc, Store: store}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:category/generate", h.generate)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:category", h.get)
	rg.GET("/documents/:category/download", h.download)
}

type generateRequest struct {
	SessionID       string                   `json:"sessionId"`
	UserID          string                   `json:"userId"`
	BusinessProfile *profile.BusinessProfile `json:"businessProfile,omitempty"`
}

func (h *Handler) generate(c *gin.Context) {
	category := c.Param("category")
	if _, ok := CategoryByKey(category); !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown document category", nil)
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.SessionID == "" || req.UserID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId and userId are required", nil)
		return
	}
	c.Set("sessionId", req.SessionID)
	c.Set("category", category)

	result, err := h.Svc.Generate(c.Request.Context(), req.SessionID, req.UserID, category, req.BusinessProfile)
	if err != nil {
		c.Set("statusTransition", StatusGenerating+"->"+StatusFailed)
		respond.GenerationError(c, err, userMessageFor(err), gin.H{
			"category": category,
			"code":     ClassifyError(err),
		})
		return
	}
	c.Set("statusTransition", StatusGenerating+"->"+StatusCompleted)

	resp := gin.H{
		"fullContent": result.Document.Content,
		"keyPoints":   result.Document.KeyPoints,
	}
	if result.Document.PDFURL != nil {
		resp["pdfUrl"] = *result.Document.PDFURL
	}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	respond.OK(c, resp)
}

func (h *Handler) list(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId is required", nil)
		return
	}
	documents, err := h.Svc.Repo.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list documents", nil)
		return
	}

	resp := make([]gin.H, 0, len(documents))
	for _, d := range documents {
		item := gin.H{
			"category": d.Category,
			"title":    d.Title,
			"status":   d.Status,
		}
		if d.Status == StatusCompleted {
			item["keyPoints"] = d.KeyPoints
			if d.PDFURL != nil {
				item["pdfUrl"] = *d.PDFURL
			}
		}
		resp = append(resp, item)
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	doc, ok := h.lookup(c)
	if !ok {
		return
	}

	resp := gin.H{
		"category":  doc.Category,
		"title":     doc.Title,
		"status":    doc.Status,
		"keyPoints": doc.KeyPoints,
	}
	if doc.Status == StatusCompleted {
		resp["fullContent"] = doc.Content
		if doc.PDFURL != nil {
			resp["pdfUrl"] = *doc.PDFURL
		} else {
			resp["warning"] = WarningPDFUnavailable
		}
	}
	respond.OK(c, resp)
}

// download streams the stored PDF through the object store. A completed
// document without a PDF is viewable online only.
func (h *Handler) download(c *gin.Context) {
	doc, ok := h.lookup(c)
	if !ok {
		return
	}
	if doc.Status != StatusCompleted || doc.PDFURL == nil || doc.PDFKey == "" {
		respond.Error(c, http.StatusNotFound, "not_found", "PDF not available for this document", nil)
		return
	}

	body, err := h.Store.Open(c.Request.Context(), doc.PDFKey)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open stored PDF", nil)
		return
	}
	defer body.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+doc.Category+`-guide.pdf"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, body)
}

func (h *Handler) lookup(c *gin.Context) (GeneratedDocument, bool) {
	category := c.Param("category")
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "sessionId is required", nil)
		return GeneratedDocument{}, false
	}
	if _, ok := CategoryByKey(category); !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown document category", nil)
		return GeneratedDocument{}, false
	}

	doc, err := h.Svc.Repo.GetBySessionCategory(c.Request.Context(), sessionID, category)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		} else {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch document", nil)
		}
		return GeneratedDocument{}, false
	}
	return doc, true
}

func userMessageFor(err error) string {
	switch {
	case errors.Is(err, llm.ErrConfiguration):
		return "Configuration error: the document service is not set up correctly. Please contact support."
	case isUpstream(err), errors.Is(err, llm.ErrMalformedResponse), errors.Is(err, ErrShortContent):
		return "The AI service could not generate this document right now. Please try again in a moment."
	default:
		return "Something went wrong while generating your document. Please try again."
	}
}
