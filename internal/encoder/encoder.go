// Package encoder turns raw request fields into the fixed-length numeric
// vectors the trained models consume. It is a pure function over the
// schema and input map; vector length and column order come entirely from
// the schema.
package encoder

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"oncoserve/internal/domain"
	"oncoserve/internal/schema"
)

// Options tunes encoding behavior.
type Options struct {
	// Strict turns silent categorical fallbacks into errors. Serving
	// keeps it off: upstream input is untrusted (user-entered or
	// document-extracted) and must not crash the pipeline. Validation
	// tooling turns it on to surface typos.
	Strict bool
}

// Encode maps rawFields into the schema's encoded vector. Fields are
// visited in declared order and columns appended in lockstep, so the
// output positions match training exactly.
func Encode(s *schema.EncodingSchema, rawFields map[string]any, opts Options) ([]float64, error) {
	vec := make([]float64, 0, s.VectorLength())

	// Resolved numeric raw values, for derived fields. Derived fields
	// read from here rather than the partially built vector so their
	// value never depends on encoding position.
	numerics := make(map[string]float64)

	for i := range s.Fields {
		f := &s.Fields[i]
		switch f.Kind {
		case schema.Numeric:
			v, err := resolveNumeric(f, rawFields)
			if err != nil {
				return nil, err
			}
			numerics[f.Name] = v
			vec = append(vec, v)

		case schema.OneHot:
			raw, present := rawFields[f.Name]
			label := ""
			if present {
				label = asLabel(raw)
			}
			matched := false
			for _, cat := range f.Categories {
				if label == cat {
					vec = append(vec, 1.0)
					matched = true
				} else {
					vec = append(vec, 0.0)
				}
			}
			if !matched && opts.Strict && present && label != "" {
				return nil, fmt.Errorf("%w: field %q value %q", domain.ErrCategoryMismatch, f.Name, label)
			}

		case schema.Ordinal:
			raw, present := rawFields[f.Name]
			label := ""
			if present {
				label = asLabel(raw)
			}
			if code, ok := f.Labels[label]; ok {
				vec = append(vec, float64(code))
			} else {
				if opts.Strict && present && label != "" {
					return nil, fmt.Errorf("%w: field %q value %q", domain.ErrCategoryMismatch, f.Name, label)
				}
				vec = append(vec, float64(f.OrdinalDefault))
			}

		case schema.Derived:
			v := 1.0
			for _, in := range f.Inputs {
				v *= numerics[in]
			}
			vec = append(vec, v)
		}
	}
	return vec, nil
}

func resolveNumeric(f *schema.FieldSpec, rawFields map[string]any) (float64, error) {
	raw, present := rawFields[f.Name]
	if !present || raw == nil {
		if f.Required {
			return 0, fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, f.Name)
		}
		return f.Default, nil
	}
	v, err := asNumber(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q: %v", domain.ErrInvalidNumericValue, f.Name, err)
	}
	return v, nil
}

// asNumber accepts the numeric shapes JSON decoding produces, plus
// numeric strings for form-sourced input.
func asNumber(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as number", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
}

func asLabel(raw any) string {
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", raw))
}
