package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfqa/src/core/qa"
)

type Handler struct {
	svc qa.Service
}

func NewHandler(svc qa.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Page)
	r.POST("/documents", h.UploadDocuments)
	r.POST("/question", h.AskQuestion)
	r.POST("/reset_index", h.ResetIndex)
	r.GET("/health", h.CheckHealth)
}

// Common error response structure
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func sendError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var code string
	switch {
	case errors.Is(err, qa.ErrNoValidDocuments):
		code = "NO_VALID_DOCUMENTS"
		status = http.StatusBadRequest
	case errors.Is(err, qa.ErrNoIndex):
		code = "NO_INDEX"
		status = http.StatusBadRequest
	case errors.Is(err, qa.ErrBlankQuestion):
		code = "BLANK_QUESTION"
		status = http.StatusBadRequest
	case errors.Is(err, qa.ErrLLMNotConfigured):
		code = "LLM_NOT_CONFIGURED"
	case errors.Is(err, qa.ErrEmbedderNotReady):
		code = "EMBEDDER_NOT_READY"
	default:
		code = "INTERNAL_ERROR"
	}

	c.JSON(status, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
