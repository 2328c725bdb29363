package dsl

import (
	serializers "github.com/fixdauto/simple-schema-serializers"
	js "github.com/fixdauto/simple-schema-serializers/jsonschema"
)

// hashSchema expands a definition's declared state into a full object
// schema. Required names and properties iterate the same declaration order
// Serialize uses, so schema shape and output keys derive from one source.
// The useRefs flag propagates into every attribute fragment so a whole
// reference tree toggles between $ref-based and inline in one call.
func hashSchema(h *HashSerializer, opts serializers.Options) (map[string]any, error) {
	useRefs := opts.Bool(serializers.OptUseRefs, true)
	properties := make(map[string]any, len(h.attributes))
	required := []string{}
	for _, a := range h.attributes {
		if a.hidden {
			continue
		}
		frag, err := a.schemaFragment(serializers.Options{serializers.OptUseRefs: useRefs})
		if err != nil {
			return nil, err
		}
		key := a.ResolveKey()
		properties[key] = frag
		if a.required {
			required = append(required, key)
		}
	}
	base := serializers.Options{"type": "object", "properties": properties}
	if len(required) > 0 {
		base["required"] = required
	}
	merged := serializers.MergeOptions(base, h.schemaOptions, opts)
	return js.Sanitize(js.Union(js.Common, js.Object), merged), nil
}
