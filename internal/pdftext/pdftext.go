// Package pdftext extracts plain text from PDF bytes.
package pdftext

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"oncoserve/internal/domain"
)

// Extractor implements port.TextExtractor for PDF documents.
type Extractor struct{}

// New returns a PDF text extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractText pulls the text layer out of a PDF. Scanned documents with
// no text layer come back empty, which downstream treats as unreadable.
func (e *Extractor) ExtractText(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed inputs; uploads are
	// untrusted, so contain that here.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	content, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return "", fmt.Errorf("%w: no text layer", domain.ErrDocumentUnreadable)
	}
	return string(content), nil
}
