package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"oncoserve/internal/domain"
	"oncoserve/internal/extract"
	"oncoserve/internal/port"
	"oncoserve/internal/schema"
)

// IngestInput carries one uploaded document bound for field extraction.
type IngestInput struct {
	ModelName   string
	Filename    string
	ContentType string
	Data        []byte
}

// IngestionService turns an uploaded document into a partial raw field
// map for the target model's schema. It never predicts; callers chain the
// output into the prediction endpoint as untrusted raw input.
type IngestionService interface {
	Ingest(ctx context.Context, input IngestInput) (*domain.ExtractionReport, error)
}

// IngestionConfig holds ingestion limits.
type IngestionConfig struct {
	MaxFileSizeMB int64
	PreviewChars  int
}

type ingestionService struct {
	schemas   *schema.Registry
	pdf       port.TextExtractor
	extractor *extract.Extractor
	pool      *ExtractPool
	cfg       IngestionConfig
}

// NewIngestionService creates a new IngestionService implementation.
func NewIngestionService(
	schemas *schema.Registry,
	pdf port.TextExtractor,
	extractor *extract.Extractor,
	pool *ExtractPool,
	cfg IngestionConfig,
) IngestionService {
	if cfg.PreviewChars <= 0 {
		cfg.PreviewChars = 300
	}
	return &ingestionService{
		schemas:   schemas,
		pdf:       pdf,
		extractor: extractor,
		pool:      pool,
		cfg:       cfg,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, input IngestInput) (*domain.ExtractionReport, error) {
	sch, err := s.schemas.SchemaFor(input.ModelName)
	if err != nil {
		return nil, err
	}

	if len(input.Data) == 0 {
		return nil, domain.ErrMissingFile
	}
	if s.cfg.MaxFileSizeMB > 0 && int64(len(input.Data)) > s.cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	docType, err := detectDocumentType(input.Filename, input.ContentType)
	if err != nil {
		return nil, err
	}

	targets := make([]domain.ExtractionTarget, 0, len(sch.Targets))
	for _, t := range sch.Targets {
		targets = append(targets, domain.ExtractionTarget{Field: t.Field, Synonyms: t.Synonyms})
	}

	// Text extraction and fuzzy matching are the CPU-bound part; they
	// run under the bounded pool so a slow document cannot stall
	// unrelated requests.
	var text string
	var values map[string]*float64
	err = s.pool.Run(ctx, func() error {
		var runErr error
		text, runErr = s.extractText(docType, input.Data)
		if runErr != nil {
			return runErr
		}
		values = s.extractor.Extract(text, targets)
		return nil
	})
	if err != nil {
		return nil, err
	}

	status := domain.ExtractionStatusOK
	if _, ok := extract.Confidence(text); !ok {
		status = domain.ExtractionStatusLowConfidence
	}

	return &domain.ExtractionReport{
		Status:      status,
		Data:        values,
		TextPreview: preview(text, s.cfg.PreviewChars),
	}, nil
}

func (s *ingestionService) extractText(docType domain.DocumentType, data []byte) (string, error) {
	switch docType {
	case domain.DocumentTypePDF:
		return s.pdf.ExtractText(data)
	case domain.DocumentTypeText:
		return string(data), nil
	default:
		return "", domain.ErrUnsupportedFileType
	}
}

func detectDocumentType(filename, contentType string) (domain.DocumentType, error) {
	switch {
	case strings.Contains(contentType, "pdf"):
		return domain.DocumentTypePDF, nil
	case strings.HasPrefix(contentType, "text/"):
		return domain.DocumentTypeText, nil
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if t, ok := domain.AllowedExtensions[ext]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, ext)
}

func preview(text string, max int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
