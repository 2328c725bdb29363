package serializers

// WithOptions decorates a serializer with default options. Call-time options
// win over the scoped defaults on key collision; every merge produces a new
// map.
func WithOptions(s Serializer, defaults Options) Serializer {
	return scopedSerializer{delegate: s, defaults: defaults}
}

type scopedSerializer struct {
	delegate Serializer
	defaults Options
}

func (s scopedSerializer) Serialize(v any, opts Options) (any, error) {
	return s.delegate.Serialize(v, MergeOptions(s.defaults, opts))
}

func (s scopedSerializer) Schema(opts Options) (map[string]any, error) {
	return SchemaFragment(s.delegate, MergeOptions(s.defaults, opts))
}
