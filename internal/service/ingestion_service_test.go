package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncoserve/internal/domain"
	"oncoserve/internal/extract"
	"oncoserve/internal/schema"
	"oncoserve/internal/service"
)

type fakeTextExtractor struct {
	text string
	err  error
}

func (f *fakeTextExtractor) ExtractText(data []byte) (string, error) {
	return f.text, f.err
}

func newIngestionService(t *testing.T, pdf *fakeTextExtractor, cfg service.IngestionConfig) service.IngestionService {
	t.Helper()
	schemas, err := schema.NewRegistry()
	require.NoError(t, err)
	return service.NewIngestionService(
		schemas,
		pdf,
		extract.New(extract.DefaultThreshold),
		service.NewExtractPool(2),
		cfg,
	)
}

const lungReport = `Medical Laboratory Report
Patient Age: 55 years old
Smoking History: 20 Pack Years
Notes: Patient shows signs of fatigue.`

func TestIngest_PlainTextDocument(t *testing.T) {
	svc := newIngestionService(t, &fakeTextExtractor{}, service.IngestionConfig{})

	report, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "lung",
		Filename:    "report.txt",
		ContentType: "text/plain",
		Data:        []byte(lungReport),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ExtractionStatusOK, report.Status)
	require.NotNil(t, report.Data["age"])
	assert.Equal(t, 55.0, *report.Data["age"])
	require.NotNil(t, report.Data["pack_years"])
	assert.Equal(t, 20.0, *report.Data["pack_years"])
}

func TestIngest_PDFGoesThroughTextExtractor(t *testing.T) {
	pdf := &fakeTextExtractor{text: lungReport}
	svc := newIngestionService(t, pdf, service.IngestionConfig{})

	report, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "lung",
		Filename:    "report.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 ..."),
	})
	require.NoError(t, err)
	require.NotNil(t, report.Data["age"])
	assert.Equal(t, 55.0, *report.Data["age"])
}

func TestIngest_UnreadablePDFSurfaces(t *testing.T) {
	pdf := &fakeTextExtractor{err: domain.ErrDocumentUnreadable}
	svc := newIngestionService(t, pdf, service.IngestionConfig{})

	_, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "lung",
		Filename:    "broken.pdf",
		ContentType: "application/pdf",
		Data:        []byte("not a pdf"),
	})
	assert.ErrorIs(t, err, domain.ErrDocumentUnreadable)
}

func TestIngest_UnknownModel(t *testing.T) {
	svc := newIngestionService(t, &fakeTextExtractor{}, service.IngestionConfig{})

	_, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "thyroid",
		Filename:    "report.txt",
		ContentType: "text/plain",
		Data:        []byte(lungReport),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownModel)
}

func TestIngest_EmptyUpload(t *testing.T) {
	svc := newIngestionService(t, &fakeTextExtractor{}, service.IngestionConfig{})

	_, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "lung",
		Filename:    "report.txt",
		ContentType: "text/plain",
	})
	assert.ErrorIs(t, err, domain.ErrMissingFile)
}

func TestIngest_FileTooLarge(t *testing.T) {
	svc := newIngestionService(t, &fakeTextExtractor{}, service.IngestionConfig{MaxFileSizeMB: 1})

	_, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "lung",
		Filename:    "report.txt",
		ContentType: "text/plain",
		Data:        make([]byte, 2*1024*1024),
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestIngest_UnsupportedType(t *testing.T) {
	svc := newIngestionService(t, &fakeTextExtractor{}, service.IngestionConfig{})

	_, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "lung",
		Filename:    "report.docx",
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:        []byte("PK..."),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestIngest_ExtensionFallbackWhenContentTypeMissing(t *testing.T) {
	svc := newIngestionService(t, &fakeTextExtractor{}, service.IngestionConfig{})

	report, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName: "lung",
		Filename:  "report.txt",
		Data:      []byte(lungReport),
	})
	require.NoError(t, err)
	require.NotNil(t, report.Data["age"])
}

func TestIngest_NonClinicalTextIsLowConfidence(t *testing.T) {
	svc := newIngestionService(t, &fakeTextExtractor{}, service.IngestionConfig{})

	report, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "lung",
		Filename:    "note.txt",
		ContentType: "text/plain",
		Data:        []byte("grocery list: eggs, milk, bread"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionStatusLowConfidence, report.Status)
}

func TestIngest_PreviewTruncates(t *testing.T) {
	long := lungReport + "\n" + strings.Repeat("Additional clinical observations recorded. ", 20)
	svc := newIngestionService(t, &fakeTextExtractor{}, service.IngestionConfig{PreviewChars: 40})

	report, err := svc.Ingest(context.Background(), service.IngestInput{
		ModelName:   "lung",
		Filename:    "report.txt",
		ContentType: "text/plain",
		Data:        []byte(long),
	})
	require.NoError(t, err)
	assert.Len(t, []rune(report.TextPreview), 43, "40 runes plus ellipsis")
	assert.True(t, strings.HasSuffix(report.TextPreview, "..."))
}
