package dsl

import (
	"github.com/iancoleman/strcase"

	serializers "github.com/fixdauto/simple-schema-serializers"
)

// KeyTransform maps a declared attribute name to its output key. The same
// transform drives serialization keys and schema property names.
type KeyTransform func(key string) string

// InflectionStyle names a built-in key transform backed by the case
// conversion collaborator.
type InflectionStyle string

const (
	Camel      InflectionStyle = "camel"
	CamelLower InflectionStyle = "camelLower"
	Dash       InflectionStyle = "dash"
	Underscore InflectionStyle = "underscore"
	Unaltered  InflectionStyle = "unaltered"
)

func transformFor(style InflectionStyle) (KeyTransform, error) {
	switch style {
	case Camel:
		return strcase.ToCamel, nil
	case CamelLower:
		return strcase.ToLowerCamel, nil
	case Dash:
		return strcase.ToKebab, nil
	case Underscore:
		return strcase.ToSnake, nil
	case Unaltered:
		return func(key string) string { return key }, nil
	default:
		return nil, serializers.DeclErrf("unknown key inflection style %q", string(style))
	}
}
