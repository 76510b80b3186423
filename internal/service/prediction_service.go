package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"oncoserve/internal/domain"
	"oncoserve/internal/encoder"
	"oncoserve/internal/schema"
)

// DefaultThreshold is applied when a request omits the decision threshold.
const DefaultThreshold = 0.5

// PredictInput is the DTO for a prediction request.
type PredictInput struct {
	ModelName string         `json:"model_name" binding:"required"`
	Features  map[string]any `json:"features" binding:"required"`
	Threshold *float64       `json:"threshold"`
}

// ModelRuntime is the scoring contract the gateway depends on.
type ModelRuntime interface {
	Predict(id domain.ModelID, vec []float64) (float64, error)
	Status() map[domain.ModelID]domain.ModelStatus
}

// PredictionService orchestrates schema resolution, encoding, and scoring
// for one request.
type PredictionService interface {
	Predict(ctx context.Context, input PredictInput) (*domain.PredictionResult, error)
}

type predictionService struct {
	schemas *schema.Registry
	runtime ModelRuntime
}

// NewPredictionService creates a new PredictionService implementation.
func NewPredictionService(schemas *schema.Registry, rt ModelRuntime) PredictionService {
	return &predictionService{schemas: schemas, runtime: rt}
}

func (s *predictionService) Predict(_ context.Context, input PredictInput) (*domain.PredictionResult, error) {
	// Resolve the schema first: an unknown model must fail before any
	// numeric work happens.
	sch, err := s.schemas.SchemaFor(input.ModelName)
	if err != nil {
		return nil, err
	}

	threshold := DefaultThreshold
	if input.Threshold != nil {
		threshold = *input.Threshold
		if threshold < 0 || threshold > 1 {
			return nil, fmt.Errorf("%w: threshold %v outside [0,1]", domain.ErrInvalidNumericValue, threshold)
		}
	}

	vec, err := encoder.Encode(sch, input.Features, encoder.Options{})
	if err != nil {
		return nil, err
	}

	prob, err := s.runtime.Predict(domain.ModelID(sch.Model), vec)
	if err != nil {
		return nil, err
	}

	class := domain.DecisionNegative
	if prob >= threshold {
		class = domain.DecisionPositive
	}

	return &domain.PredictionResult{
		RequestID: uuid.New().String(),
		Model:     domain.ModelID(sch.Model),
		Prediction: domain.Prediction{
			Class:         class,
			Probability:   prob,
			RiskLevel:     domain.RiskFor(prob),
			ThresholdUsed: threshold,
		},
		ReceivedFeatures: input.Features,
	}, nil
}
