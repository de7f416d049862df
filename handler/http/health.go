package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfqa/src/core/qa"
)

type HealthResponse struct {
	Status string    `json:"status"`
	Index  qa.Status `json:"index"`
}

// CheckHealth reports process liveness and the state of the index.
func (h *Handler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
		Index:  h.svc.Status(c.Request.Context()),
	})
}
