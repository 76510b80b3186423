package runtime

import (
	"encoding/json"
	"fmt"
	"os"
)

// StandardScaler is the fitted normalization transform exported alongside
// each model: x' = (x - mean) / scale, per column.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LoadStandardScaler reads scaler parameters from a JSON sidecar and
// checks them against the expected vector length.
func LoadStandardScaler(path string, dims int) (*StandardScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler: %w", err)
	}
	var s StandardScaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scaler: %w", err)
	}
	if len(s.Mean) != dims || len(s.Scale) != dims {
		return nil, fmt.Errorf("scaler dimensions mean=%d scale=%d do not match vector length %d",
			len(s.Mean), len(s.Scale), dims)
	}
	for i, sc := range s.Scale {
		if sc == 0 {
			return nil, fmt.Errorf("scaler column %d has zero scale", i)
		}
	}
	return &s, nil
}

// Transform rescales a raw feature vector.
func (s *StandardScaler) Transform(vec []float64) ([]float64, error) {
	if len(vec) != len(s.Mean) {
		return nil, fmt.Errorf("vector length %d does not match scaler length %d", len(vec), len(s.Mean))
	}
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}
