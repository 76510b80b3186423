package domain

import "errors"

var (
	ErrUnknownModel         = errors.New("unknown model")
	ErrMissingRequiredField = errors.New("missing required feature")
	ErrInvalidNumericValue  = errors.New("invalid numeric feature value")
	ErrCategoryMismatch     = errors.New("unrecognized category label")
	ErrRuntimeUnavailable   = errors.New("model runtime unavailable")
	ErrInferenceFailure     = errors.New("inference failed")
	ErrMissingFile          = errors.New("file field is required")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrDocumentUnreadable   = errors.New("document text could not be extracted")
)
