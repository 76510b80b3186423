package router

import (
	"github.com/gin-gonic/gin"

	"oncoserve/internal/handler"
	"oncoserve/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	predictH *handler.PredictHandler,
	documentH *handler.DocumentHandler,
	modelH *handler.ModelHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/health", healthH.Models)

	v1 := r.Group("/api/v1")
	v1.POST("/predict", predictH.Predict)
	v1.POST("/documents/extract", documentH.Extract)
	v1.GET("/models/:name/features", modelH.Features)

	return r
}
