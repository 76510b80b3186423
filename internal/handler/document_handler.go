package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"oncoserve/internal/domain"
	"oncoserve/internal/service"
)

// DocumentHandler handles document ingestion endpoints.
type DocumentHandler struct {
	ingestionService service.IngestionService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(ingestionService service.IngestionService) *DocumentHandler {
	return &DocumentHandler{ingestionService: ingestionService}
}

// Extract handles POST /api/v1/documents/extract
// Multipart form: "type" is the target model name, "file" the document.
func (h *DocumentHandler) Extract(c *gin.Context) {
	modelName := c.PostForm("type")
	if modelName == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_TYPE", "type field is required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		HandleError(c, domain.ErrDocumentUnreadable)
		return
	}

	input := service.IngestInput{
		ModelName:   modelName,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}

	report, err := h.ingestionService.Ingest(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
