package serializers

import (
	j "github.com/goccy/go-json"
)

// MarshalJSON serializes v through s and encodes the result as JSON.
func MarshalJSON(s Serializer, v any, opts Options) ([]byte, error) {
	out, err := s.Serialize(v, opts)
	if err != nil {
		return nil, err
	}
	return j.Marshal(out)
}

// MarshalSchemaJSON encodes the schema of s as JSON.
func MarshalSchemaJSON(s Serializer, opts Options) ([]byte, error) {
	schema, err := s.Schema(opts)
	if err != nil {
		return nil, err
	}
	return j.Marshal(schema)
}
