package jsonschema

import (
	j "github.com/goccy/go-json"
)

// Marshal encodes a schema fragment as JSON.
func Marshal(schema map[string]any) ([]byte, error) {
	return j.Marshal(schema)
}

// MarshalIndent encodes a schema fragment as indented JSON for embedding in
// documentation.
func MarshalIndent(schema map[string]any) ([]byte, error) {
	return j.MarshalIndent(schema, "", "  ")
}

// Unmarshal decodes a JSON schema fragment into a string-keyed map.
func Unmarshal(data []byte) (map[string]any, error) {
	var out map[string]any
	if err := j.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
