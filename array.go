package serializers

import (
	"reflect"

	js "github.com/fixdauto/simple-schema-serializers/jsonschema"
)

// Array decorates a serializer so it applies to every element of a sequence.
func Array(s Serializer) Serializer { return arraySerializer{delegate: s} }

// ArrayWithOptions is Array with declaration-time array-schema options
// (minItems, maxItems, uniqueItems, ...) baked into the wrapper.
func ArrayWithOptions(s Serializer, opts Options) Serializer {
	return arraySerializer{delegate: s, declared: opts}
}

type arraySerializer struct {
	delegate Serializer
	declared Options
}

func (a arraySerializer) Serialize(v any, opts Options) (any, error) {
	if IsNilValue(v) {
		return nil, DeclErrf("cannot serialize nil as array; declare the attribute optional")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, DeclErrf("cannot serialize %T as array", v)
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := a.delegate.Serialize(rv.Index(i).Interface(), opts)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

func (a arraySerializer) Schema(opts Options) (map[string]any, error) {
	items, err := SchemaFragment(a.delegate, opts)
	if err != nil {
		return nil, err
	}
	frag := MergeOptions(opts, a.declared, Options{"type": "array", "items": items})
	return js.Sanitize(js.Union(js.Common, js.Array), frag), nil
}
