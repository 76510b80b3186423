package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"oncoserve/internal/domain"
)

// Registry holds the encoding schema for every registered model. It is
// populated once before serving traffic and read-only afterwards, so
// lookups need no locking.
type Registry struct {
	schemas map[domain.ModelID]*EncodingSchema
}

// NewRegistry returns a registry preloaded with the built-in schemas.
func NewRegistry() (*Registry, error) {
	r := &Registry{schemas: make(map[domain.ModelID]*EncodingSchema)}
	for _, s := range []*EncodingSchema{breastSchema(), lungSchema(), colorectalSchema()} {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register validates and adds a schema. New models are a data change, not
// a code change: build the schema and register it here.
func (r *Registry) Register(s *EncodingSchema) error {
	if err := s.Validate(); err != nil {
		return err
	}
	id := domain.ModelID(strings.ToLower(s.Model))
	if _, dup := r.schemas[id]; dup {
		return fmt.Errorf("schema for model %q already registered", id)
	}
	r.schemas[id] = s
	return nil
}

// SchemaFor resolves the encoding schema for a model identifier. Lookup
// is case-insensitive to match the request contract.
func (r *Registry) SchemaFor(model string) (*EncodingSchema, error) {
	s, ok := r.schemas[domain.ModelID(strings.ToLower(model))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownModel, model)
	}
	return s, nil
}

// Models returns the registered model identifiers.
func (r *Registry) Models() []domain.ModelID {
	ids := make([]domain.ModelID, 0, len(r.schemas))
	for id := range r.schemas {
		ids = append(ids, id)
	}
	return ids
}

// ApplyMappingFile overlays ordinal label maps from a JSON sidecar file
// versioned alongside the model artifact. File format is
// field name -> {category label -> encoded integer}. Entries for fields
// that are not ordinal in the schema are ignored: the sidecars also carry
// maps for columns the deployed artifact one-hot encodes instead.
func (r *Registry) ApplyMappingFile(model, path string) error {
	s, err := r.SchemaFor(model)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read mapping file for %s: %w", model, err)
	}
	var maps map[string]map[string]int
	if err := json.Unmarshal(data, &maps); err != nil {
		return fmt.Errorf("parse mapping file for %s: %w", model, err)
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Kind != Ordinal {
			continue
		}
		if m, ok := maps[f.Name]; ok && len(m) > 0 {
			f.Labels = m
		}
	}
	return nil
}
