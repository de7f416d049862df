package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuestionRequest struct {
	Question string `json:"question"`
}

// AskQuestion retrieves the chunks nearest to the question and answers
// it through the remote LLM, constrained to that retrieved context.
func (h *Handler) AskQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_REQUEST",
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}

	answer, err := h.svc.Ask(c.Request.Context(), req.Question)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}
