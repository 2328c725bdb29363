package jsonschema

// KeySet is a closed set of permitted schema keys for one value kind.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from the given keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is permitted by the set.
func (s KeySet) Has(k string) bool {
	_, ok := s[k]
	return ok
}

// Union merges the given sets into a new KeySet.
func Union(sets ...KeySet) KeySet {
	out := KeySet{}
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}

// Draft-07-compatible vocabulary, restricted to the keys serializers emit.
var (
	Common     = NewKeySet("type", "enum", "const", "default", "description", "title", "examples", "format")
	String     = NewKeySet("minLength", "maxLength", "pattern")
	Number     = NewKeySet("minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "multipleOf")
	Array      = NewKeySet("items", "minItems", "maxItems", "uniqueItems")
	Object     = NewKeySet("properties", "required", "additionalProperties", "minProperties", "maxProperties", "definitions")
	Combinator = NewKeySet("oneOf", "anyOf", "allOf", "not")
	Ref        = NewKeySet("$ref")
)

// All permits every key the package knows about. Wrappers whose delegate kind
// is not statically known (Optional) sanitize against this.
var All = Union(Common, String, Number, Array, Object, Combinator, Ref)
