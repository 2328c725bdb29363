package serializers

import "github.com/samber/lo"

// Options carries open-ended settings for a serializer: declared passthrough
// schema keys (format, enum, description, ...), runtime knobs (round, useRefs),
// and scoped defaults. Serializers never mutate an Options value they receive.
type Options map[string]any

// MergeOptions returns a fresh map with later maps overriding earlier ones on
// key collision. Nil inputs are skipped; the inputs are never mutated.
func MergeOptions(opts ...Options) Options {
	return lo.Assign(opts...)
}

// Bool reads key as a bool, returning fallback when the key is absent or not
// a bool.
func (o Options) Bool(key string, fallback bool) bool {
	if o == nil {
		return fallback
	}
	if b, ok := o[key].(bool); ok {
		return b
	}
	return fallback
}

// String reads key as a string, returning "" when absent or not a string.
func (o Options) String(key string) string {
	if o == nil {
		return ""
	}
	s, _ := o[key].(string)
	return s
}

// Without returns a copy of o with the given keys removed.
func (o Options) Without(keys ...string) Options {
	out := lo.Assign(o)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
