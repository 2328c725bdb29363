package jsonschema

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes a schema fragment as YAML, for embedding generated
// schemas in OpenAPI-style documents.
func MarshalYAML(schema map[string]any) ([]byte, error) {
	return yaml.Marshal(schema)
}

// UnmarshalYAML decodes a YAML document into a string-keyed schema fragment.
// Non-string mapping keys are stringified where possible and dropped
// otherwise.
func UnmarshalYAML(data []byte) (map[string]any, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return yamlAnyToStringMap(node), nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into string-keyed maps.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = yamlNormalizeValue(e)
		}
		return out
	default:
		return v
	}
}
