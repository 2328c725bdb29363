package serializers

// Package serializers maps domain objects (or plain key-value records) to
// JSON-shaped output while deriving, from the same declaration, a JSON Schema
// document describing that output.
//
// It provides:
//
// - A Serializer capability (Serialize/Schema) every serializer-like value satisfies
// - Primitive serializers for strings, numbers, booleans, dates, and open maps
// - Wrapper serializers: Optional, Array, and WithOptions (scoped defaults)
// - A uniform DeclarationError model for declaration and input-shape misuse
//
// Design policy:
// - Keep only the public capability surface in the root package.
// - Place the declaration DSL under dsl/, the JSON Schema representation under
//   jsonschema/, and validation-collaborator adapters under validator/.
// - Definitions are built once and are safe for concurrent read-only use;
//   Serialize and Schema never mutate declaration state or their option maps.
//
// Typical usage:
//
//	user := dsl.Hash().
//		Defines("User").
//		Attribute("id", "integer").
//		Attribute("name", "string?").
//		MustBuild()
//
//	out, err := user.Serialize(value, nil)
//	schema, err := user.Schema(nil)
