package dsl

import (
	serializers "github.com/fixdauto/simple-schema-serializers"
	js "github.com/fixdauto/simple-schema-serializers/jsonschema"
)

// Document bundles the inline schemas of reference-named definitions under
// "definitions" so the $ref fragments they emit for one another resolve
// within a single document.
func Document(defs ...*HashSerializer) (map[string]any, error) {
	definitions := make(map[string]map[string]any, len(defs))
	for _, d := range defs {
		name := d.RefName()
		if name == "" {
			return nil, serializers.DeclErrf("document requires named definitions (use Defines)")
		}
		if _, dup := definitions[name]; dup {
			return nil, serializers.DeclErrf("document contains definition %q twice", name)
		}
		schema, err := d.Schema(nil)
		if err != nil {
			return nil, err
		}
		definitions[name] = schema
	}
	return js.Document(definitions), nil
}
