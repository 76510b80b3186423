package port

// TextExtractor abstracts document-to-text conversion for uploaded files.
type TextExtractor interface {
	// ExtractText returns the plain text content of a document.
	ExtractText(data []byte) (string, error)
}
