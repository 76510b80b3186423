package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oncoserve/internal/domain"
	"oncoserve/internal/handler"
	"oncoserve/internal/service"
)

type mockPredictionService struct {
	mock.Mock
}

func (m *mockPredictionService) Predict(_ context.Context, input service.PredictInput) (*domain.PredictionResult, error) {
	args := m.Called(input)
	if res := args.Get(0); res != nil {
		return res.(*domain.PredictionResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func newPredictRouter(svc service.PredictionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/predict", handler.NewPredictHandler(svc).Predict)
	return r
}

func doPredict(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPredictHandler_Success(t *testing.T) {
	svc := new(mockPredictionService)
	svc.On("Predict", mock.AnythingOfType("service.PredictInput")).Return(&domain.PredictionResult{
		RequestID: "req-1",
		Model:     domain.ModelLung,
		Prediction: domain.Prediction{
			Class:         domain.DecisionPositive,
			Probability:   0.82,
			RiskLevel:     domain.RiskHigh,
			ThresholdUsed: 0.5,
		},
		ReceivedFeatures: map[string]any{"age": 63.0},
	}, nil)

	w := doPredict(t, newPredictRouter(svc), `{"model_name":"lung","features":{"age":63}}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp["request_id"])
	assert.Equal(t, "lung", resp["model"])
	pred := resp["prediction"].(map[string]any)
	assert.Equal(t, "positive", pred["class"])
	assert.Equal(t, "high", pred["risk_level"])
}

func TestPredictHandler_MissingBodyFields(t *testing.T) {
	svc := new(mockPredictionService)

	w := doPredict(t, newPredictRouter(svc), `{"model_name":"lung"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Predict", mock.Anything)
}

func TestPredictHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown model", domain.ErrUnknownModel, http.StatusBadRequest, "UNKNOWN_MODEL"},
		{"missing feature", domain.ErrMissingRequiredField, http.StatusBadRequest, "MISSING_FEATURE"},
		{"invalid value", domain.ErrInvalidNumericValue, http.StatusBadRequest, "INVALID_FEATURE_VALUE"},
		{"runtime unavailable", domain.ErrRuntimeUnavailable, http.StatusServiceUnavailable, "MODEL_UNAVAILABLE"},
		{"inference failure", domain.ErrInferenceFailure, http.StatusInternalServerError, "INFERENCE_FAILED"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockPredictionService)
			svc.On("Predict", mock.AnythingOfType("service.PredictInput")).Return(nil, tc.err)

			w := doPredict(t, newPredictRouter(svc), `{"model_name":"lung","features":{"age":63}}`)

			require.Equal(t, tc.wantStatus, w.Code)

			var resp handler.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}
