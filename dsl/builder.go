package dsl

import (
	serializers "github.com/fixdauto/simple-schema-serializers"
	js "github.com/fixdauto/simple-schema-serializers/jsonschema"
)

// HashBuilder accumulates the declaration of one object-serializer
// definition. Declaration errors stick to the builder and surface at Build;
// MustBuild panics on them.
type HashBuilder struct {
	name              string
	attributes        []*Attribute
	aliases           map[string]aliasEntry
	keyTransform      KeyTransform
	schemaOptions     serializers.Options
	attributeDefaults serializers.Options
	validationOptions serializers.Options
	combo             *ComboBuilder
	pendingDesc       *string
	err               error
}

// Hash creates a new root builder seeded with the built-in alias table.
func Hash() *HashBuilder {
	return &HashBuilder{aliases: builtinAliases()}
}

// Extend derives a new definition from parent: aliases, key transform,
// schema options, validation options, attributes and attribute defaults are
// all inherited; the builder function then refines the copy. The reference
// name is not inherited.
func Extend(parent *HashSerializer, build func(*HashBuilder)) (*HashSerializer, error) {
	b := extendBuilder(parent, true)
	if build != nil {
		build(b)
	}
	return b.Build()
}

// MustExtend is Extend but panics on declaration errors.
func MustExtend(parent *HashSerializer, build func(*HashBuilder)) *HashSerializer {
	h, err := Extend(parent, build)
	if err != nil {
		panic(err)
	}
	return h
}

// extendBuilder seeds a builder from a finalized definition. Aliases are
// always copied; attributes and attribute defaults only for subclass-style
// extension, never for anonymous nested scopes.
func extendBuilder(parent *HashSerializer, includeAttributes bool) *HashBuilder {
	b := &HashBuilder{
		aliases:           copyAliases(parent.aliases),
		keyTransform:      parent.keyTransform,
		schemaOptions:     serializers.MergeOptions(parent.schemaOptions),
		validationOptions: serializers.MergeOptions(parent.validationOptions),
	}
	if includeAttributes {
		b.attributes = append([]*Attribute{}, parent.attributes...)
		b.attributeDefaults = serializers.MergeOptions(parent.attributeDefaults)
	}
	return b
}

// nested creates the builder for an anonymous nested scope (hashAttribute,
// arrayAttribute, combinator options): aliases, key transform, and schema
// options are inherited from the enclosing declaration as it stands, but not
// its attributes.
func (b *HashBuilder) nested() *HashBuilder {
	return &HashBuilder{
		aliases:       copyAliases(b.aliases),
		keyTransform:  b.keyTransform,
		schemaOptions: serializers.MergeOptions(b.schemaOptions),
	}
}

func (b *HashBuilder) fail(err error) *HashBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// attachContext stamps the builder's definition name onto declaration errors
// raised without one.
func (b *HashBuilder) attachContext(err error, attribute string) error {
	if de, ok := err.(*serializers.DeclarationError); ok {
		if de.Definition == "" {
			de.Definition = b.name
		}
		if de.Attribute == "" {
			de.Attribute = attribute
		}
	}
	return err
}

// Defines sets the reference name used for $ref generation.
func (b *HashBuilder) Defines(name string) *HashBuilder {
	b.name = name
	return b
}

// Desc queues a description applied to the next attribute declaration only.
func (b *HashBuilder) Desc(text string) *HashBuilder {
	b.pendingDesc = &text
	return b
}

func (b *HashBuilder) takePendingDesc() serializers.Options {
	if b.pendingDesc == nil {
		return nil
	}
	d := *b.pendingDesc
	b.pendingDesc = nil
	return serializers.Options{"description": d}
}

// Attribute declares an output property. ref is either a Serializer value or
// an alias name; opts merge over, in increasing precedence, the builder's
// attribute defaults, the alias's registered defaults, and a pending Desc.
// Redeclaring a name replaces the earlier attribute in place, preserving its
// position, so derived definitions can override inherited attributes.
func (b *HashBuilder) Attribute(name string, ref any, opts ...serializers.Options) *HashBuilder {
	if b.err != nil {
		return b
	}
	ser, aliasDefaults, err := lookupAlias(b.aliases, ref)
	if err != nil {
		return b.fail(b.attachContext(err, name))
	}
	merged := serializers.MergeOptions(append([]serializers.Options{b.attributeDefaults, aliasDefaults, b.takePendingDesc()}, opts...)...)
	attr, err := newAttribute(name, ser, merged)
	if err != nil {
		return b.fail(b.attachContext(err, name))
	}
	for i, existing := range b.attributes {
		if existing.name == name {
			b.attributes[i] = attr
			return b
		}
	}
	b.attributes = append(b.attributes, attr)
	return b
}

// HashAttribute declares an attribute backed by an anonymous nested
// definition built by the given function.
func (b *HashBuilder) HashAttribute(name string, opts serializers.Options, build func(*HashBuilder)) *HashBuilder {
	if b.err != nil {
		return b
	}
	if build == nil {
		return b.fail(serializers.DeclErrAt(b.name, name, "hashAttribute requires a builder function"))
	}
	nb := b.nested()
	build(nb)
	def, err := nb.Build()
	if err != nil {
		return b.fail(b.attachContext(err, name))
	}
	return b.Attribute(name, def, opts)
}

// ArrayAttribute declares an attribute holding an array of anonymous nested
// definitions. Array-schema keys in opts (and common schema keys) configure
// the array wrapper; the remainder configures the attribute itself.
func (b *HashBuilder) ArrayAttribute(name string, opts serializers.Options, build func(*HashBuilder)) *HashBuilder {
	if b.err != nil {
		return b
	}
	if build == nil {
		return b.fail(serializers.DeclErrAt(b.name, name, "arrayAttribute requires a builder function"))
	}
	nb := b.nested()
	build(nb)
	def, err := nb.Build()
	if err != nil {
		return b.fail(b.attachContext(err, name))
	}
	arrayOpts, attrOpts := partitionArrayOptions(opts)
	return b.Attribute(name, serializers.ArrayWithOptions(def, arrayOpts), attrOpts)
}

func partitionArrayOptions(opts serializers.Options) (arrayOpts, attrOpts serializers.Options) {
	arrayKeys := js.Union(js.Array, js.Common)
	arrayOpts = serializers.Options{}
	attrOpts = serializers.Options{}
	for k, v := range opts {
		if arrayKeys.Has(k) {
			arrayOpts[k] = v
		} else {
			attrOpts[k] = v
		}
	}
	return arrayOpts, attrOpts
}

// RemoveAttribute deletes a declared (possibly inherited) attribute.
func (b *HashBuilder) RemoveAttribute(name string) *HashBuilder {
	if b.err != nil {
		return b
	}
	for i, a := range b.attributes {
		if a.name == name {
			b.attributes = append(b.attributes[:i], b.attributes[i+1:]...)
			return b
		}
	}
	return b.fail(serializers.DeclErrAt(b.name, name, "cannot remove undeclared attribute"))
}

// AliasConfig tunes RegisterAlias. The zero value registers an optional
// "name?" counterpart and refuses to replace existing entries.
type AliasConfig struct {
	// SkipOptional suppresses the automatic "name?" registration.
	SkipOptional bool
	// Override allows replacing an existing registration.
	Override bool
	// Aliases registers additional names for the same serializer.
	Aliases []string
	// DefaultOptions merge under attribute-call options whenever the alias
	// is referenced.
	DefaultOptions serializers.Options
}

// RegisterAlias binds a name (and optional extra names) to a serializer for
// use in Attribute declarations.
func (b *HashBuilder) RegisterAlias(name string, s serializers.Serializer, cfg ...AliasConfig) *HashBuilder {
	if b.err != nil {
		return b
	}
	var c AliasConfig
	if len(cfg) > 0 {
		c = cfg[0]
	}
	if s == nil {
		return b.fail(serializers.DeclErrAt(b.name, "", "alias %q has no serializer", name))
	}
	for _, n := range append([]string{name}, c.Aliases...) {
		if _, exists := b.aliases[n]; exists && !c.Override {
			return b.fail(serializers.DeclErrAt(b.name, "", "alias %q already registered (set Override to replace)", n))
		}
		b.aliases[n] = aliasEntry{serializer: s, defaults: c.DefaultOptions}
		if !c.SkipOptional {
			b.aliases[n+"?"] = aliasEntry{serializer: serializers.Optional(s), defaults: c.DefaultOptions}
		}
	}
	return b
}

// OneOf declares a selector-dispatched combinator; the definition then
// serializes and describes itself exclusively through it.
func (b *HashBuilder) OneOf(build func(*ComboBuilder)) *HashBuilder { return b.comboDecl(OneOf, build) }

// AnyOf declares a selector-dispatched combinator emitted as anyOf.
func (b *HashBuilder) AnyOf(build func(*ComboBuilder)) *HashBuilder { return b.comboDecl(AnyOf, build) }

// AllOf declares a merge-dispatched combinator.
func (b *HashBuilder) AllOf(build func(*ComboBuilder)) *HashBuilder { return b.comboDecl(AllOf, build) }

func (b *HashBuilder) comboDecl(kind ComboKind, build func(*ComboBuilder)) *HashBuilder {
	if b.err != nil {
		return b
	}
	if b.combo != nil {
		return b.fail(serializers.DeclErrAt(b.name, "", "combinator already declared (%s)", b.combo.kind))
	}
	if build == nil {
		return b.fail(serializers.DeclErrAt(b.name, "", "%s requires a builder function", kind))
	}
	cb := newComboBuilder(kind, b)
	build(cb)
	b.combo = cb
	return b
}

// TransformKeys sets the definition-wide key transform.
func (b *HashBuilder) TransformKeys(fn KeyTransform) *HashBuilder {
	b.keyTransform = fn
	return b
}

// KeyInflection sets the key transform from a built-in style.
func (b *HashBuilder) KeyInflection(style InflectionStyle) *HashBuilder {
	if b.err != nil {
		return b
	}
	tf, err := transformFor(style)
	if err != nil {
		return b.fail(b.attachContext(err, ""))
	}
	b.keyTransform = tf
	return b
}

// SchemaOptions merges definition-level schema options (description,
// minProperties, ...); later calls win on key collision.
func (b *HashBuilder) SchemaOptions(opts serializers.Options) *HashBuilder {
	b.schemaOptions = serializers.MergeOptions(b.schemaOptions, opts)
	return b
}

// AttributeDefaults merges definition-wide defaults applied under every
// subsequent Attribute declaration.
func (b *HashBuilder) AttributeDefaults(opts serializers.Options) *HashBuilder {
	b.attributeDefaults = serializers.MergeOptions(b.attributeDefaults, opts)
	return b
}

// ValidationOptions merges options handed to the validation collaborator.
func (b *HashBuilder) ValidationOptions(opts serializers.Options) *HashBuilder {
	b.validationOptions = serializers.MergeOptions(b.validationOptions, opts)
	return b
}

// Build finalizes the declaration into an immutable HashSerializer.
func (b *HashBuilder) Build() (*HashSerializer, error) {
	if b.err != nil {
		return nil, b.err
	}
	h := &HashSerializer{
		name:              b.name,
		aliases:           b.aliases,
		keyTransform:      b.keyTransform,
		schemaOptions:     b.schemaOptions,
		attributeDefaults: b.attributeDefaults,
		validationOptions: b.validationOptions,
	}
	if b.combo != nil {
		if len(b.attributes) > 0 {
			return nil, serializers.DeclErrAt(b.name, "", "definition cannot declare both attributes and a combinator")
		}
		c, err := b.combo.build()
		if err != nil {
			return nil, b.attachContext(err, "")
		}
		c.definition = b.name
		h.combo = c
		return h, nil
	}
	h.attributes = make([]*Attribute, len(b.attributes))
	for i, a := range b.attributes {
		c := a.clone()
		c.definition = b.name
		c.defTransform = b.keyTransform
		h.attributes[i] = c
	}
	return h, nil
}

// MustBuild is Build but panics on declaration errors.
func (b *HashBuilder) MustBuild() *HashSerializer {
	h, err := b.Build()
	if err != nil {
		panic(err)
	}
	return h
}
