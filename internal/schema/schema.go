package schema

import (
	"fmt"
	"strings"
)

// FieldKind selects the encoding rule applied to a raw field.
type FieldKind int

const (
	// Numeric casts the raw value to a float. Missing values error when
	// the field is required and fall back to Default otherwise.
	Numeric FieldKind = iota
	// OneHot emits one 0/1 column per declared category. Unmatched raw
	// values encode as all zeros, never an error.
	OneHot
	// Ordinal maps a label to an integer via the field's label map.
	// Unmatched labels fall back to the declared default integer.
	Ordinal
	// Derived is computed as the product of previously declared numeric
	// fields and occupies one column.
	Derived
)

// FieldSpec describes how one raw input field contributes to the encoded
// vector. Exactly the variant fields for its Kind are meaningful.
type FieldSpec struct {
	Name string
	Kind FieldKind

	// Numeric
	Required bool
	Default  float64

	// OneHot
	Categories []string

	// Ordinal
	Labels         map[string]int
	OrdinalDefault int

	// Derived
	Inputs []string
}

// Width returns how many vector columns the field occupies.
func (f *FieldSpec) Width() int {
	if f.Kind == OneHot {
		return len(f.Categories)
	}
	return 1
}

// ColumnNames returns the encoded column names for the field, in order.
func (f *FieldSpec) ColumnNames() []string {
	if f.Kind != OneHot {
		return []string{f.Name}
	}
	names := make([]string, len(f.Categories))
	for i, cat := range f.Categories {
		names[i] = f.Name + "_" + cat
	}
	return names
}

// EncodingSchema is the ordered encoding contract for one model. Field
// order and vector length are fixed at training time; the schema is the
// single source of truth and is never inferred at request time.
type EncodingSchema struct {
	Model  string
	Fields []FieldSpec

	// Targets drive document extraction for this model. Keys are raw
	// field names so extraction output feeds straight into encoding.
	Targets []Target
}

// Target pairs a raw field name with label synonyms searched for in
// document text.
type Target struct {
	Field    string
	Synonyms []string
}

// VectorLength returns the fixed encoded vector length.
func (s *EncodingSchema) VectorLength() int {
	n := 0
	for i := range s.Fields {
		n += s.Fields[i].Width()
	}
	return n
}

// ColumnNames returns every encoded column name in vector order.
func (s *EncodingSchema) ColumnNames() []string {
	names := make([]string, 0, s.VectorLength())
	for i := range s.Fields {
		names = append(names, s.Fields[i].ColumnNames()...)
	}
	return names
}

// OrdinalMappings returns the label maps for all ordinal fields, keyed by
// raw field name. Used by the model metadata endpoint.
func (s *EncodingSchema) OrdinalMappings() map[string]map[string]int {
	out := make(map[string]map[string]int)
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Kind == Ordinal {
			out[f.Name] = f.Labels
		}
	}
	return out
}

// Validate checks the structural invariants that make encoding safe:
// unique field names, non-empty category sets, and derived fields whose
// inputs are numeric fields declared earlier.
func (s *EncodingSchema) Validate() error {
	seen := make(map[string]FieldKind, len(s.Fields))
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("schema %s: field %d has no name", s.Model, i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("schema %s: duplicate field %q", s.Model, f.Name)
		}
		switch f.Kind {
		case OneHot:
			if len(f.Categories) == 0 {
				return fmt.Errorf("schema %s: one-hot field %q has no categories", s.Model, f.Name)
			}
		case Ordinal:
			if len(f.Labels) == 0 {
				return fmt.Errorf("schema %s: ordinal field %q has no label map", s.Model, f.Name)
			}
		case Derived:
			if len(f.Inputs) == 0 {
				return fmt.Errorf("schema %s: derived field %q has no inputs", s.Model, f.Name)
			}
			for _, in := range f.Inputs {
				kind, ok := seen[in]
				if !ok {
					return fmt.Errorf("schema %s: derived field %q depends on %q which is not declared before it",
						s.Model, f.Name, in)
				}
				if kind != Numeric {
					return fmt.Errorf("schema %s: derived field %q depends on non-numeric field %q",
						s.Model, f.Name, in)
				}
			}
		}
		seen[f.Name] = f.Kind
	}
	return nil
}

// synonymFor derives a human-readable label from a raw field name,
// e.g. "pack_years" -> "Pack Years", "Vitamin C (mg)" -> "Vitamin C".
func synonymFor(field string) string {
	name := field
	if i := strings.Index(name, "("); i > 0 {
		name = name[:i]
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
