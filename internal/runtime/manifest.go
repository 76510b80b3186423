package runtime

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ArtifactSet locates the on-disk files for one trained model. The scorer
// and normalizer are versioned together; a schema/artifact mismatch is a
// silent-corruption risk, so the manifest is the only place paths live.
type ArtifactSet struct {
	ModelPath   string `yaml:"model_path"`
	ScalerPath  string `yaml:"scaler_path"`
	MappingPath string `yaml:"mapping_path"`
	InputName   string `yaml:"input_name"`
	OutputName  string `yaml:"output_name"`
}

// Manifest maps model identifiers to their artifact sets.
type Manifest struct {
	Models map[string]ArtifactSet `yaml:"models"`
}

// LoadManifest reads the artifact manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Models) == 0 {
		return nil, fmt.Errorf("manifest %s declares no models", path)
	}
	for id, set := range m.Models {
		if set.ModelPath == "" || set.ScalerPath == "" {
			return nil, fmt.Errorf("manifest entry %q is missing model_path or scaler_path", id)
		}
		if set.InputName == "" {
			set.InputName = "input"
		}
		if set.OutputName == "" {
			set.OutputName = "output"
		}
		m.Models[id] = set
	}
	return &m, nil
}
