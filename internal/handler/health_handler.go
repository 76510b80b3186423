package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oncoserve/internal/domain"
	"oncoserve/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	runtime service.ModelRuntime
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(rt service.ModelRuntime) *HealthHandler {
	return &HealthHandler{runtime: rt}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Models handles GET /health
// Reports per-model readiness; a model whose artifacts failed to load
// shows up here as not_loaded and returns 503 on predict.
func (h *HealthHandler) Models(c *gin.Context) {
	statuses := h.runtime.Status()

	models := make(map[string]domain.ModelStatus, len(statuses))
	ready := true
	for id, st := range statuses {
		models[string(id)] = st
		if st != domain.ModelStatusReady {
			ready = false
		}
	}

	httpStatus := http.StatusOK
	overall := "ok"
	if !ready {
		httpStatus = http.StatusServiceUnavailable
		overall = "degraded"
	}
	c.JSON(httpStatus, gin.H{"status": overall, "models": models})
}
