package settings

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/ruledoc/pkg/diag"
)

// fileSchema is the on-disk YAML representation of the settings file.
type fileSchema struct {
	Severities map[string]string `yaml:"severities"`
}

// FromYAML parses settings from YAML bytes.
func FromYAML(data []byte) (*Settings, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	s := New()
	for category, sev := range schema.Severities {
		if err := s.Set(category, diag.Severity(sev)); err != nil {
			return nil, fmt.Errorf("parse settings: %w", err)
		}
	}

	return s, nil
}

// ToYAML serializes the settings with stable key order.
func (s *Settings) ToYAML() ([]byte, error) {
	schema := fileSchema{Severities: make(map[string]string)}
	for _, category := range s.Categories() {
		sev, _ := s.Resolve(category)
		schema.Severities[category] = string(sev)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(schema); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
