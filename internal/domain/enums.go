package domain

// ModelID identifies one of the independently trained classifiers.
type ModelID string

const (
	ModelBreast     ModelID = "breast"
	ModelLung       ModelID = "lung"
	ModelColorectal ModelID = "colorectal"
)

// DecisionClass is the thresholded binary outcome of a prediction.
type DecisionClass string

const (
	DecisionPositive DecisionClass = "positive"
	DecisionNegative DecisionClass = "negative"
)

// RiskLevel is the coarse display bucket derived from a probability.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// RiskFor buckets a probability into a display risk level.
func RiskFor(prob float64) RiskLevel {
	switch {
	case prob >= 0.7:
		return RiskHigh
	case prob >= 0.4:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ModelStatus reports whether a model's artifacts loaded successfully.
type ModelStatus string

const (
	ModelStatusReady     ModelStatus = "ready"
	ModelStatusNotLoaded ModelStatus = "not_loaded"
)

// DocumentType represents the allowed upload types for extraction.
type DocumentType string

const (
	DocumentTypePDF  DocumentType = "pdf"
	DocumentTypeText DocumentType = "txt"
)

// AllowedExtensions maps file extensions (without dot) to DocumentType.
var AllowedExtensions = map[string]DocumentType{
	"pdf":  DocumentTypePDF,
	"txt":  DocumentTypeText,
	"text": DocumentTypeText,
}
