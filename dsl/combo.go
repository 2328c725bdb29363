package dsl

import (
	"strings"

	serializers "github.com/fixdauto/simple-schema-serializers"
	js "github.com/fixdauto/simple-schema-serializers/jsonschema"
)

// ComboKind selects the combinator dispatch: selector-driven (oneOf, anyOf)
// or merge-driven (allOf).
type ComboKind string

const (
	OneOf ComboKind = "oneOf"
	AnyOf ComboKind = "anyOf"
	AllOf ComboKind = "allOf"
)

// SelectorFunc picks the option name to dispatch a oneOf/anyOf serialization
// to, given the input value and call options.
type SelectorFunc func(v any, opts serializers.Options) (string, error)

type comboOption struct {
	name       string
	serializer serializers.Serializer
}

// ComboSerializer dispatches serialization across an ordered set of named
// options and describes them as a oneOf/anyOf/allOf schema. It is stateless
// per call.
type ComboSerializer struct {
	kind       ComboKind
	definition string
	options    []comboOption
	selector   SelectorFunc
}

var _ serializers.Serializer = (*ComboSerializer)(nil)

func (c *ComboSerializer) Serialize(v any, opts serializers.Options) (any, error) {
	if c.kind == AllOf {
		return c.serializeAllOf(v, opts)
	}
	if c.selector == nil {
		return nil, serializers.DeclErrAt(c.definition, "", "%s serializer requires a selector", c.kind)
	}
	name, err := c.selector(v, opts)
	if err != nil {
		return nil, err
	}
	for _, opt := range c.options {
		if opt.name == name {
			return opt.serializer.Serialize(v, opts)
		}
	}
	return nil, serializers.DeclErrAt(c.definition, "", "selector chose unknown option %q; valid options: %s", name, strings.Join(c.optionNames(), ", "))
}

// serializeAllOf serializes the same input through every option in
// declaration order and shallow-merges the resulting objects; later options
// win on key collision.
func (c *ComboSerializer) serializeAllOf(v any, opts serializers.Options) (any, error) {
	out := map[string]any{}
	for _, opt := range c.options {
		res, err := opt.serializer.Serialize(v, opts)
		if err != nil {
			return nil, err
		}
		m, ok := res.(map[string]any)
		if !ok {
			return nil, serializers.DeclErrAt(c.definition, "", "allOf option %q produced %T, want an object", opt.name, res)
		}
		for k, vv := range m {
			out[k] = vv
		}
	}
	return out, nil
}

func (c *ComboSerializer) Schema(opts serializers.Options) (map[string]any, error) {
	frags := make([]any, 0, len(c.options))
	for _, opt := range c.options {
		frag, err := serializers.SchemaFragment(opt.serializer, opts)
		if err != nil {
			return nil, err
		}
		frags = append(frags, frag)
	}
	merged := serializers.MergeOptions(opts, serializers.Options{string(c.kind): frags})
	return js.Sanitize(js.Union(js.Combinator, js.Common), merged), nil
}

func (c *ComboSerializer) optionNames() []string {
	names := make([]string, len(c.options))
	for i, opt := range c.options {
		names[i] = opt.name
	}
	return names
}

// ComboBuilder declares the ordered options (and, for oneOf/anyOf, the
// selector) of a combinator inside a oneOf/anyOf/allOf block.
type ComboBuilder struct {
	kind      ComboKind
	enclosing *HashBuilder
	options   []comboOption
	selector  SelectorFunc
	err       error
}

func newComboBuilder(kind ComboKind, enclosing *HashBuilder) *ComboBuilder {
	return &ComboBuilder{kind: kind, enclosing: enclosing}
}

func (cb *ComboBuilder) fail(err error) *ComboBuilder {
	if cb.err == nil {
		cb.err = err
	}
	return cb
}

// Option declares a named delegate in declaration order.
func (cb *ComboBuilder) Option(name string, s serializers.Serializer) *ComboBuilder {
	if cb.err != nil {
		return cb
	}
	if s == nil {
		return cb.fail(serializers.DeclErrf("%s option %q has no serializer", cb.kind, name))
	}
	for _, opt := range cb.options {
		if opt.name == name {
			return cb.fail(serializers.DeclErrf("%s option %q declared twice", cb.kind, name))
		}
	}
	cb.options = append(cb.options, comboOption{name: name, serializer: s})
	return cb
}

// HashOption declares an anonymous nested definition as an option. The
// nested scope inherits aliases, key transform, and schema options from the
// enclosing definition, but not its attributes.
func (cb *ComboBuilder) HashOption(name string, build func(*HashBuilder)) *ComboBuilder {
	if cb.err != nil {
		return cb
	}
	if build == nil {
		return cb.fail(serializers.DeclErrf("%s option %q requires a builder function", cb.kind, name))
	}
	nb := cb.enclosing.nested()
	build(nb)
	def, err := nb.Build()
	if err != nil {
		return cb.fail(err)
	}
	return cb.Option(name, def)
}

// Selector sets the dispatch function for oneOf/anyOf combinators.
func (cb *ComboBuilder) Selector(fn SelectorFunc) *ComboBuilder {
	cb.selector = fn
	return cb
}

func (cb *ComboBuilder) build() (*ComboSerializer, error) {
	if cb.err != nil {
		return nil, cb.err
	}
	switch cb.kind {
	case OneOf, AnyOf, AllOf:
	default:
		return nil, serializers.DeclErrf("unknown combinator kind %q", string(cb.kind))
	}
	if len(cb.options) == 0 {
		return nil, serializers.DeclErrf("%s declares no options", cb.kind)
	}
	if cb.kind == AllOf && cb.selector != nil {
		return nil, serializers.DeclErrf("allOf does not take a selector")
	}
	return &ComboSerializer{kind: cb.kind, options: cb.options, selector: cb.selector}, nil
}
