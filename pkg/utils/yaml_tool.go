package utils

import (
	"gopkg.in/yaml.v2"
)

// JSONToYAML re-encodes a JSON document as YAML. Object keys keep their
// JSON order.
var JSONToYAML = func(jsonContent []byte) ([]byte, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(jsonContent, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
