// Package jsonschema adapts github.com/santhosh-tekuri/jsonschema as the
// schema-validation collaborator. Importing it (blank import is enough)
// registers the adapter as the default validator.
package jsonschema

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
	tekuri "github.com/santhosh-tekuri/jsonschema/v5"

	serializers "github.com/fixdauto/simple-schema-serializers"
)

func init() { serializers.SetValidator(Validator{}) }

// Validator is a Draft-07 validation collaborator. Supported options:
// "assertFormat" (bool) enables format assertions.
type Validator struct{}

var _ serializers.Validator = Validator{}

func (Validator) Validate(schema map[string]any, value any, opts serializers.Options) error {
	compiled, err := compile(schema, opts)
	if err != nil {
		return err
	}
	doc, err := roundTrip(value)
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("serializers: value does not conform to schema: %w", err)
	}
	return nil
}

func compile(schema map[string]any, opts serializers.Options) (*tekuri.Schema, error) {
	data, err := j.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("serializers: cannot encode schema: %w", err)
	}
	c := tekuri.NewCompiler()
	c.Draft = tekuri.Draft7
	c.AssertFormat = opts.Bool("assertFormat", false)
	if err := c.AddResource("schema.json", bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("serializers: cannot load schema: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("serializers: cannot compile schema: %w", err)
	}
	return compiled, nil
}

// roundTrip re-decodes the value through JSON so the validator sees plain
// decoded JSON types regardless of the Go types serialization produced.
func roundTrip(value any) (any, error) {
	data, err := j.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("serializers: cannot encode value for validation: %w", err)
	}
	var doc any
	if err := j.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
