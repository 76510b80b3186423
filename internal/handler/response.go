package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"oncoserve/internal/domain"
)

// APIError holds error details in an error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error responses. Success payloads
// use the documented endpoint shapes directly.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error
// codes. Every failure kind stays distinguishable for the caller; nothing
// is retried server-side.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnknownModel):
		return http.StatusBadRequest, "UNKNOWN_MODEL", err.Error()
	case errors.Is(err, domain.ErrMissingRequiredField):
		return http.StatusBadRequest, "MISSING_FEATURE", err.Error()
	case errors.Is(err, domain.ErrInvalidNumericValue):
		return http.StatusBadRequest, "INVALID_FEATURE_VALUE", err.Error()
	case errors.Is(err, domain.ErrCategoryMismatch):
		return http.StatusBadRequest, "CATEGORY_MISMATCH", err.Error()
	case errors.Is(err, domain.ErrRuntimeUnavailable):
		return http.StatusServiceUnavailable, "MODEL_UNAVAILABLE", "model artifacts are not loaded; see /health"
	case errors.Is(err, domain.ErrInferenceFailure):
		// The underlying cause travels with the message for diagnosis.
		return http.StatusInternalServerError, "INFERENCE_FAILED", err.Error()
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "file field is required"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, txt"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrDocumentUnreadable):
		return http.StatusBadRequest, "DOCUMENT_UNREADABLE", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
