package dsl

import (
	serializers "github.com/fixdauto/simple-schema-serializers"
)

// conditional gates attribute inclusion. Exactly one of the arms is set:
// a callable evaluated against the bound (value, options) pair, or the name
// of a boolean accessor resolved on the underlying value.
type conditional struct {
	fn     func(v any, opts serializers.Options) bool
	method string
}

// Attribute is one declared output property of a definition: an output key,
// a delegate serializer, a source accessor, and inclusion/requirement policy.
// Attributes are immutable once their definition is built.
type Attribute struct {
	name            string
	serializer      serializers.Serializer
	source          string
	cond            *conditional
	defaultValue    any
	hasDefault      bool
	required        bool
	hidden          bool
	allowMissingKey bool
	keyTransform    KeyTransform
	passthrough     serializers.Options

	// stamped at Build time
	definition   string
	defTransform KeyTransform
}

// newAttribute constructs an attribute from the merged declaration options.
// Recognized option keys configure the attribute; everything else is carried
// as passthrough schema/runtime options for the delegate serializer.
func newAttribute(name string, s serializers.Serializer, opts serializers.Options) (*Attribute, error) {
	a := &Attribute{name: name, serializer: s, source: name}
	passthrough := serializers.Options{}
	requiredSet := false
	optional := false
	for k, v := range opts {
		switch k {
		case "source":
			src, ok := v.(string)
			if !ok {
				return nil, serializers.DeclErrAt("", name, "source must be a string, got %T", v)
			}
			a.source = src
		case "if":
			switch t := v.(type) {
			case func(any, serializers.Options) bool:
				a.cond = &conditional{fn: t}
			case string:
				a.cond = &conditional{method: t}
			default:
				return nil, serializers.DeclErrAt("", name, "if must be a predicate func or accessor name, got %T", v)
			}
		case "default":
			a.defaultValue = v
			a.hasDefault = true
		case "required":
			b, ok := v.(bool)
			if !ok {
				return nil, serializers.DeclErrAt("", name, "required must be a bool, got %T", v)
			}
			a.required = b
			requiredSet = true
		case "hidden":
			a.hidden, _ = v.(bool)
		case "optional":
			optional, _ = v.(bool)
		case "allowMissingKey":
			a.allowMissingKey, _ = v.(bool)
		case "keyTransform":
			switch t := v.(type) {
			case KeyTransform:
				a.keyTransform = t
			case func(string) string:
				a.keyTransform = t
			default:
				return nil, serializers.DeclErrAt("", name, "keyTransform must be a func(string) string, got %T", v)
			}
		case "keyInflection":
			style, ok := v.(InflectionStyle)
			if !ok {
				if s, sok := v.(string); sok {
					style, ok = InflectionStyle(s), true
				}
			}
			if !ok {
				return nil, serializers.DeclErrAt("", name, "keyInflection must be an InflectionStyle, got %T", v)
			}
			tf, err := transformFor(style)
			if err != nil {
				return nil, err
			}
			a.keyTransform = tf
		default:
			passthrough[k] = v
		}
	}
	if optional {
		a.serializer = serializers.Optional(a.serializer)
	}
	if !requiredSet {
		a.required = !(a.hidden || a.cond != nil)
	}
	a.passthrough = passthrough
	return a, nil
}

// Name returns the declared attribute name.
func (a *Attribute) Name() string { return a.name }

// Required reports whether the attribute is listed in the schema's required
// set.
func (a *Attribute) Required() bool { return a.required }

// Hidden reports whether the attribute is excluded from the schema. Hidden
// attributes are still serialized.
func (a *Attribute) Hidden() bool { return a.hidden }

// ResolveKey returns the output key: the attribute's own transform when set,
// else the definition's transform, else the raw name. Serialization and
// schema generation both use this key.
func (a *Attribute) ResolveKey() string {
	switch {
	case a.keyTransform != nil:
		return a.keyTransform(a.name)
	case a.defTransform != nil:
		return a.defTransform(a.name)
	default:
		return a.name
	}
}

func (a *Attribute) shouldSkip(in *Instance) (bool, error) {
	if a.cond == nil {
		return false, nil
	}
	if a.cond.fn != nil {
		return !a.cond.fn(in.value, in.opts), nil
	}
	v, found, err := in.resolveSource(a.cond.method)
	if err != nil {
		return false, &serializers.MissingSourceError{Definition: a.definition, Attribute: a.name, Source: a.cond.method, Cause: err}
	}
	if !found {
		return false, serializers.DeclErrAt(a.definition, a.name, "conditional accessor %q not found on %T", a.cond.method, in.value)
	}
	b, ok := v.(bool)
	if !ok {
		return false, serializers.DeclErrAt(a.definition, a.name, "conditional accessor %q returned %T, want bool", a.cond.method, v)
	}
	return !b, nil
}

// valueFor resolves the source accessor against the instance. Absence is a
// DeclarationError unless allowMissingKey tolerates it; an accessor failing
// for an unrelated reason is wrapped in a MissingSourceError with the
// original cause preserved.
func (a *Attribute) valueFor(in *Instance) (any, error) {
	v, found, err := in.resolveSource(a.source)
	if err != nil {
		return nil, &serializers.MissingSourceError{Definition: a.definition, Attribute: a.name, Source: a.source, Cause: err}
	}
	if !found {
		if a.allowMissingKey {
			return nil, nil
		}
		return nil, serializers.DeclErrAt(a.definition, a.name, "missing key or accessor %q on %T", a.source, in.value)
	}
	return v, nil
}

func (a *Attribute) serialize(in *Instance) (any, error) {
	v, err := a.valueFor(in)
	if err != nil {
		return nil, err
	}
	if serializers.IsNilValue(v) && a.hasDefault {
		v = a.defaultValue
	}
	// call options win over declared passthrough options
	return a.serializer.Serialize(v, serializers.MergeOptions(a.passthrough, in.opts))
}

// schemaFragment describes the attribute's value through its delegate,
// merging declared passthrough options under extra.
func (a *Attribute) schemaFragment(extra serializers.Options) (map[string]any, error) {
	return serializers.SchemaFragment(a.serializer, serializers.MergeOptions(a.passthrough, extra))
}

func (a *Attribute) clone() *Attribute {
	c := *a
	return &c
}
