package dsl

import (
	serializers "github.com/fixdauto/simple-schema-serializers"
)

// HashSerializer is a finalized object-serializer definition: an ordered
// attribute list (or a single combinator), registered aliases, a key
// transform, schema-level options, and an optional reference name. It is
// immutable after Build and safe for concurrent use; Serialize and Schema
// only read declared state and build fresh per-call output.
type HashSerializer struct {
	name              string
	attributes        []*Attribute
	aliases           map[string]aliasEntry
	keyTransform      KeyTransform
	schemaOptions     serializers.Options
	attributeDefaults serializers.Options
	validationOptions serializers.Options
	combo             *ComboSerializer
}

var _ serializers.Referencer = (*HashSerializer)(nil)

// RefName returns the reference name set via Defines, or "".
func (h *HashSerializer) RefName() string { return h.name }

// AttributeNames returns the declared attribute names in declaration order.
func (h *HashSerializer) AttributeNames() []string {
	names := make([]string, len(h.attributes))
	for i, a := range h.attributes {
		names[i] = a.name
	}
	return names
}

// Serialize walks the declared attributes in declaration order against an
// ephemeral instance binding (v, opts). Hidden attributes are serialized;
// conditional attributes are skipped when their predicate rejects the value.
// A combinator-based definition delegates entirely to its combinator.
func (h *HashSerializer) Serialize(v any, opts serializers.Options) (any, error) {
	if h.combo != nil {
		return h.combo.Serialize(v, opts)
	}
	in := &Instance{value: v, opts: opts}
	out := make(map[string]any, len(h.attributes))
	for _, a := range h.attributes {
		skip, err := a.shouldSkip(in)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		val, err := a.serialize(in)
		if err != nil {
			return nil, err
		}
		out[a.ResolveKey()] = val
	}
	return out, nil
}

// Schema returns this definition's inline object schema. Embedding sites
// (attributes, wrappers, combinator options) go through
// serializers.SchemaFragment instead, which collapses reference-named
// definitions to a $ref; calling Schema directly never self-references, so a
// named definition's own schema is fully expanded at the top level.
func (h *HashSerializer) Schema(opts serializers.Options) (map[string]any, error) {
	if h.combo != nil {
		return h.combo.Schema(opts)
	}
	return hashSchema(h, opts)
}

// Validate checks v against this definition's schema using the registered
// validation collaborator and the definition's inherited validation options.
// The schema is generated inline (useRefs=false) so it is self-contained.
func (h *HashSerializer) Validate(v any) error {
	val := serializers.DefaultValidator()
	if val == nil {
		return serializers.ErrNoValidator
	}
	schema, err := h.Schema(serializers.Options{serializers.OptUseRefs: false})
	if err != nil {
		return err
	}
	return val.Validate(schema, v, h.validationOptions)
}

// IsValid reports whether v conforms to this definition's schema.
func (h *HashSerializer) IsValid(v any) bool { return h.Validate(v) == nil }
