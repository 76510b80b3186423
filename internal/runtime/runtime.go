// Package runtime owns the loaded scorer/normalizer pairs. Artifacts are
// loaded eagerly at startup and shared read-only afterwards; the registry
// is the only shared state in the process and is append-only after load.
package runtime

import (
	"fmt"
	"sync"

	"oncoserve/internal/domain"
)

// Scorer is an opaque trained function mapping a fixed-length vector to a
// probability in [0,1].
type Scorer interface {
	Score(vec []float64) (float64, error)
}

// Normalizer rescales a raw feature vector to the distribution the scorer
// was trained against.
type Normalizer interface {
	Transform(vec []float64) ([]float64, error)
}

type entry struct {
	scorer     Scorer
	normalizer Normalizer
	loadErr    error
}

// Registry caches one (scorer, normalizer) pair per model for the process
// lifetime. A failed load is recorded, surfaced in health, and turns every
// predict call for that model into ErrRuntimeUnavailable; a prediction is
// never returned on a failed load.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.ModelID]*entry
}

// NewRegistry returns an empty runtime registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[domain.ModelID]*entry)}
}

// Register installs a loaded scorer/normalizer pair for a model.
func (r *Registry) Register(id domain.ModelID, s Scorer, n Normalizer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &entry{scorer: s, normalizer: n}
}

// RegisterFailed records a load failure so health reporting and predict
// calls can surface it instead of pretending the model does not exist.
func (r *Registry) RegisterFailed(id domain.ModelID, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &entry{loadErr: err}
}

// Predict runs normalize then score for the given model.
func (r *Registry) Predict(id domain.ModelID, vec []float64) (float64, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrRuntimeUnavailable, id)
	}
	if e.loadErr != nil {
		return 0, fmt.Errorf("%w: %q: %v", domain.ErrRuntimeUnavailable, id, e.loadErr)
	}

	scaled, err := e.normalizer.Transform(vec)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInferenceFailure, err)
	}
	prob, err := e.scorer.Score(scaled)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInferenceFailure, err)
	}
	return prob, nil
}

// Status reports per-model readiness for the health endpoint.
func (r *Registry) Status() map[domain.ModelID]domain.ModelStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[domain.ModelID]domain.ModelStatus, len(r.entries))
	for id, e := range r.entries {
		if e.loadErr != nil {
			out[id] = domain.ModelStatusNotLoaded
		} else {
			out[id] = domain.ModelStatusReady
		}
	}
	return out
}
