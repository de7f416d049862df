package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfqa/src/core/qa"
)

type DocumentUploadResponse struct {
	Message              string          `json:"message"`
	DocumentsIndexed     int             `json:"documents_indexed"`
	TotalChunksGenerated int             `json:"total_chunks_generated"`
	Files                []qa.FileResult `json:"files,omitempty"`
}

// UploadDocuments accepts one or more PDF files under the multipart
// key "files", indexes their content and persists the updated index.
func (h *Handler) UploadDocuments(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "NO_FILES",
			Message: fmt.Sprintf("file upload required: %v", err),
		})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "NO_FILES",
			Message: "no files uploaded, expected multipart field \"files\"",
		})
		return
	}

	uploads := make([]qa.Upload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			sendError(c, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err))
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			sendError(c, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err))
			return
		}
		uploads = append(uploads, qa.Upload{Filename: fh.Filename, Data: data})
	}

	report, err := h.svc.Ingest(c.Request.Context(), uploads)
	if err != nil {
		sendError(c, err)
		return
	}

	message := fmt.Sprintf("Documents processed successfully. %d PDF(s) indexed.", report.DocumentsIndexed)
	if report.DocumentsIndexed == 0 {
		message = "No new documents were suitable for indexing or no text could be extracted."
	}

	c.JSON(http.StatusOK, DocumentUploadResponse{
		Message:              message,
		DocumentsIndexed:     report.DocumentsIndexed,
		TotalChunksGenerated: report.TotalChunks,
		Files:                report.Results,
	})
}
