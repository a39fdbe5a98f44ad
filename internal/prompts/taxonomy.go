package prompts

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Taxonomy maps product categories to the attribute names extracted by
// default when a record requests none. Loaded once at startup from a YAML
// file of the form:
//
//	electrical:
//	  - Material
//	  - Voltage
//	hvac:
//	  - Capacity
type Taxonomy struct {
	defaults map[string][]string
}

// LoadTaxonomy reads the YAML taxonomy at path. An empty path yields an
// empty taxonomy, which is valid: records then rely on the extractor's
// "extractor decides" behavior.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	t := &Taxonomy{defaults: make(map[string][]string)}
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	for category, attrs := range raw {
		t.defaults[strings.ToLower(strings.TrimSpace(category))] = attrs
	}
	return t, nil
}

// DefaultAttributes returns the default attribute names for category, or nil
// if the taxonomy has no entry for it.
func (t *Taxonomy) DefaultAttributes(category string) []string {
	return t.defaults[strings.ToLower(strings.TrimSpace(category))]
}
