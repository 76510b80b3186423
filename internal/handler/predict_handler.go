package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oncoserve/internal/service"
)

// PredictHandler handles prediction endpoints.
type PredictHandler struct {
	predictionService service.PredictionService
}

// NewPredictHandler creates a new PredictHandler.
func NewPredictHandler(predictionService service.PredictionService) *PredictHandler {
	return &PredictHandler{predictionService: predictionService}
}

// Predict handles POST /api/v1/predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var input service.PredictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "model_name and features are required")
		return
	}

	result, err := h.predictionService.Predict(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
