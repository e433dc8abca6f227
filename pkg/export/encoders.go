package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// JSONEncoder emits an indented JSON form definition.
type JSONEncoder struct{}

func (JSONEncoder) Name() string        { return "json" }
func (JSONEncoder) ContentType() string { return "application/json" }

func (JSONEncoder) Encode(def FormDefinition) ([]byte, error) {
	payload, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode json: %w", err)
	}
	return payload, nil
}

// YAMLEncoder emits a YAML form definition.
type YAMLEncoder struct{}

func (YAMLEncoder) Name() string        { return "yaml" }
func (YAMLEncoder) ContentType() string { return "application/yaml" }

func (YAMLEncoder) Encode(def FormDefinition) ([]byte, error) {
	payload, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("export: encode yaml: %w", err)
	}
	return payload, nil
}
