package playground

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadRuleMap decodes a YAML document mapping field names to tag rules:
//
//	Name: required,max=50
//	Email: required,email
//
// An empty document yields an empty map.
func LoadRuleMap(r io.Reader) (map[string]string, error) {
	rules := make(map[string]string)
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		if errors.Is(err, io.EOF) {
			return rules, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleMap, err)
	}
	return rules, nil
}
