package runtime

import (
	"fmt"
	"log"

	"oncoserve/internal/domain"
	"oncoserve/internal/schema"
)

// LoadAll eagerly loads every model the manifest declares, sized by its
// encoding schema. Loading up front keeps first-request latency flat and
// surfaces missing artifacts before traffic arrives; a failed load is
// recorded rather than fatal so health can report exactly which model is
// broken.
func LoadAll(reg *Registry, m *Manifest, schemas *schema.Registry) {
	for id, set := range m.Models {
		s, err := schemas.SchemaFor(id)
		if err != nil {
			log.Printf("runtime: manifest model %q has no encoding schema, skipping", id)
			continue
		}
		dims := s.VectorLength()

		scorer, err := NewONNXScorer(set.ModelPath, set.InputName, set.OutputName, dims)
		if err != nil {
			log.Printf("runtime: load scorer for %q: %v", id, err)
			reg.RegisterFailed(domain.ModelID(id), fmt.Errorf("scorer: %w", err))
			continue
		}
		scaler, err := LoadStandardScaler(set.ScalerPath, dims)
		if err != nil {
			log.Printf("runtime: load scaler for %q: %v", id, err)
			reg.RegisterFailed(domain.ModelID(id), fmt.Errorf("scaler: %w", err))
			continue
		}

		reg.Register(domain.ModelID(id), scorer, scaler)
		log.Printf("runtime: model %q ready (%d features)", id, dims)
	}
}
