package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oncoserve/internal/schema"
)

// ModelHandler serves model metadata.
type ModelHandler struct {
	schemas *schema.Registry
}

// NewModelHandler creates a new ModelHandler.
func NewModelHandler(schemas *schema.Registry) *ModelHandler {
	return &ModelHandler{schemas: schemas}
}

// Features handles GET /api/v1/models/:name/features
// Returns the encoded column order and categorical mappings so clients
// can build raw field maps that match the training layout.
func (h *ModelHandler) Features(c *gin.Context) {
	s, err := h.schemas.SchemaFor(c.Param("name"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"model":               s.Model,
		"features":            s.ColumnNames(),
		"categorical_mapping": s.OrdinalMappings(),
	})
}
