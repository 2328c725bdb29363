package serializers

import (
	js "github.com/fixdauto/simple-schema-serializers/jsonschema"
)

// Optional decorates a serializer so that nil passes through as nil and the
// schema admits null.
func Optional(s Serializer) Serializer { return optionalSerializer{delegate: s} }

type optionalSerializer struct {
	delegate Serializer
}

func (o optionalSerializer) Serialize(v any, opts Options) (any, error) {
	if IsNilValue(v) {
		return nil, nil
	}
	return o.delegate.Serialize(v, opts)
}

// Schema widens the delegate schema to admit null. References and schemas
// whose declared type includes object or array cannot be widened in place, so
// those become {"oneOf": [{"type": "null"}, delegate]}.
func (o optionalSerializer) Schema(opts Options) (map[string]any, error) {
	frag, err := SchemaFragment(o.delegate, opts)
	if err != nil {
		return nil, err
	}
	if _, isRef := frag["$ref"]; isRef || typeIncludes(frag["type"], "object", "array") || frag["type"] == nil {
		out := map[string]any{"oneOf": []any{map[string]any{"type": "null"}, frag}}
		return js.Sanitize(js.Union(js.Combinator, js.Common), out), nil
	}
	out := make(map[string]any, len(frag)+1)
	for k, v := range frag {
		out[k] = v
	}
	out["type"] = widenTypes(frag["type"])
	if enum, ok := frag["enum"].([]any); ok && !containsNil(enum) {
		out["enum"] = append(append([]any{}, enum...), nil)
	}
	return js.Sanitize(js.All, out), nil
}

func typeIncludes(declared any, kinds ...string) bool {
	match := func(s string) bool {
		for _, k := range kinds {
			if s == k {
				return true
			}
		}
		return false
	}
	switch t := declared.(type) {
	case string:
		return match(t)
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok && match(s) {
				return true
			}
		}
	case []string:
		for _, s := range t {
			if match(s) {
				return true
			}
		}
	}
	return false
}

func widenTypes(declared any) []any {
	out := []any{}
	switch t := declared.(type) {
	case string:
		out = append(out, t)
	case []any:
		out = append(out, t...)
	case []string:
		for _, s := range t {
			out = append(out, s)
		}
	}
	for _, e := range out {
		if e == "null" {
			return out
		}
	}
	return append(out, "null")
}

func containsNil(enum []any) bool {
	for _, e := range enum {
		if e == nil {
			return true
		}
	}
	return false
}
