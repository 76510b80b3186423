package domain

// Prediction holds the thresholded outcome of a single scoring call.
type Prediction struct {
	Class         DecisionClass `json:"class"`
	Probability   float64       `json:"probability"`
	RiskLevel     RiskLevel     `json:"risk_level"`
	ThresholdUsed float64       `json:"threshold_used"`
}

// PredictionResult is the full per-request prediction payload. It is
// computed fresh per request and never persisted.
type PredictionResult struct {
	RequestID        string         `json:"request_id"`
	Model            ModelID        `json:"model"`
	Prediction       Prediction     `json:"prediction"`
	ReceivedFeatures map[string]any `json:"received_features"`
}

// ExtractionTarget names a raw schema field together with the label
// synonyms used to locate it in document text.
type ExtractionTarget struct {
	Field    string
	Synonyms []string
}

// ExtractionReport maps target field names to parsed values. A nil value
// means no line cleared the similarity threshold; callers must treat that
// as "supply manually", never as a zero clinical value.
type ExtractionReport struct {
	Status      string              `json:"status"`
	Data        map[string]*float64 `json:"data"`
	TextPreview string              `json:"text_preview"`
}

const (
	ExtractionStatusOK            = "ok"
	ExtractionStatusLowConfidence = "low_confidence"
)
