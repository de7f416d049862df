package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ResetResponse struct {
	Message string `json:"message"`
}

// ResetIndex clears the in-memory index and deletes its persisted
// directory. The in-memory state is gone even when disk cleanup fails.
func (h *Handler) ResetIndex(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResetResponse{
		Message: "Vector store and persisted index have been reset successfully.",
	})
}
