// Package dsl provides the declaration surface for building hash-serializer
// definitions: ordered attributes with alias lookup, nested anonymous
// definitions, oneOf/anyOf/allOf combinators, key transforms, and
// subclass-style extension.
//
// A builder is mutable until Build/MustBuild finalizes it into an immutable
// HashSerializer; declaration errors accumulate in the builder and surface at
// Build. Finalized definitions are safe for concurrent read-only use.
//
//	address := dsl.Hash().
//		Attribute("street", "string").
//		Attribute("zip", "string?").
//		MustBuild()
//
//	user := dsl.Hash().
//		Defines("User").
//		KeyInflection(dsl.CamelLower).
//		Attribute("display_name", "string").
//		Attribute("address", address, serializers.Options{"optional": true}).
//		MustBuild()
package dsl
