package main

import (
	"fmt"
	"log"

	"oncoserve/internal/config"
	"oncoserve/internal/extract"
	"oncoserve/internal/handler"
	"oncoserve/internal/pdftext"
	"oncoserve/internal/router"
	"oncoserve/internal/runtime"
	"oncoserve/internal/schema"
	"oncoserve/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Encoding schemas are configuration fixed at startup, never
	// inferred per request.
	schemas, err := schema.NewRegistry()
	if err != nil {
		return fmt.Errorf("failed to build schema registry: %w", err)
	}

	manifest, err := runtime.LoadManifest(cfg.Models.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load model manifest: %w", err)
	}

	// Overlay categorical mapping sidecars versioned with the artifacts.
	for id, set := range manifest.Models {
		if set.MappingPath == "" {
			continue
		}
		if err := schemas.ApplyMappingFile(id, set.MappingPath); err != nil {
			return fmt.Errorf("failed to apply mapping file for %s: %w", id, err)
		}
	}

	// Eager load: missing artifacts surface now, not on first request.
	rt := runtime.NewRegistry()
	runtime.LoadAll(rt, manifest, schemas)

	extractor := extract.New(cfg.Extract.MatchThreshold)
	pool := service.NewExtractPool(cfg.Extract.Concurrency)

	predictionSvc := service.NewPredictionService(schemas, rt)
	ingestionSvc := service.NewIngestionService(schemas, pdftext.New(), extractor, pool, service.IngestionConfig{
		MaxFileSizeMB: cfg.Extract.MaxFileSizeMB,
		PreviewChars:  cfg.Extract.PreviewChars,
	})

	predictH := handler.NewPredictHandler(predictionSvc)
	documentH := handler.NewDocumentHandler(ingestionSvc)
	modelH := handler.NewModelHandler(schemas)
	healthH := handler.NewHealthHandler(rt)

	r := router.Setup(predictH, documentH, modelH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
