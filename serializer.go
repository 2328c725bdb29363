package serializers

import (
	js "github.com/fixdauto/simple-schema-serializers/jsonschema"
)

// Serializer is the capability every serializer-like value satisfies: it can
// convert a value plus runtime options into a JSON-compatible value, and it
// can produce a JSON Schema fragment describing all values it may emit. Both
// operations derive from the same declared state.
//
// Serialize output is composed only of string-keyed maps, slices, strings,
// numbers, booleans, and nil. Schema output is a string-keyed map restricted
// to the allow-lists in package jsonschema.
type Serializer interface {
	Serialize(v any, opts Options) (any, error)
	Schema(opts Options) (map[string]any, error)
}

// Referencer is satisfied by serializers that carry a stable reference name,
// allowing embedding sites to emit a $ref instead of an inline expansion.
type Referencer interface {
	Serializer
	RefName() string
}

// OptUseRefs toggles $ref emission for named definitions. It defaults to
// true and propagates through nested fragments so an entire reference tree
// can be switched between $ref-based and inline-expanded in one call.
const OptUseRefs = "useRefs"

// SchemaFragment returns the schema for s as seen from an embedding site:
// when s is reference-named and opts does not disable refs, the fragment
// collapses to a $ref merged with the remaining schema options. Wrappers and
// attributes describe their delegates through this helper; calling Schema
// directly always yields the inline expansion.
func SchemaFragment(s Serializer, opts Options) (map[string]any, error) {
	if r, ok := s.(Referencer); ok && r.RefName() != "" && opts.Bool(OptUseRefs, true) {
		frag := MergeOptions(opts, Options{"$ref": js.DefinitionRef(r.RefName())})
		return js.Sanitize(js.Union(js.Ref, js.Common), frag), nil
	}
	return s.Schema(opts)
}
