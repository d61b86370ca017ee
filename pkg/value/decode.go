package value

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML document into a Value. An empty document yields
// none.
func FromYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("value: decode yaml: %w", err)
	}
	return FromAny(raw)
}

// FromJSON decodes a JSON document into a Value.
func FromJSON(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Value{}, fmt.Errorf("value: decode json: %w", err)
	}
	return FromAny(raw)
}
