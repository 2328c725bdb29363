package dsl_test

import (
	"reflect"
	"testing"

	serializers "github.com/fixdauto/simple-schema-serializers"
	g "github.com/fixdauto/simple-schema-serializers/dsl"
)

func personBase() *g.HashSerializer {
	return g.Hash().
		Defines("Person").
		RegisterAlias("name", serializers.String()).
		Attribute("id", "integer").
		Attribute("first", "name").
		Attribute("last", "name").
		MustBuild()
}

func TestExtend_InheritsAttributesAndAliases(t *testing.T) {
	base := personBase()
	employee := g.MustExtend(base, func(b *g.HashBuilder) {
		b.Attribute("title", "name")
	})

	out, err := employee.Serialize(map[string]any{
		"id": 1, "first": "a", "last": "b", "title": "c",
	}, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := map[string]any{"id": int64(1), "first": "a", "last": "b", "title": "c"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("Serialize = %v", out)
	}

	// base is untouched
	if got := base.AttributeNames(); !reflect.DeepEqual(got, []string{"id", "first", "last"}) {
		t.Fatalf("parent attributes changed: %v", got)
	}
}

func TestExtend_OverrideKeepsPosition(t *testing.T) {
	base := personBase()
	masked := g.MustExtend(base, func(b *g.HashBuilder) {
		b.Attribute("first", "string", serializers.Options{"source": "initial"})
	})

	if got := masked.AttributeNames(); !reflect.DeepEqual(got, []string{"id", "first", "last"}) {
		t.Fatalf("override changed ordering: %v", got)
	}

	out, err := masked.Serialize(map[string]any{
		"id": 1, "initial": "A", "last": "b",
	}, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if out.(map[string]any)["first"] != "A" {
		t.Fatalf("override not applied: %v", out)
	}
}

func TestExtend_RemoveInheritedAttribute(t *testing.T) {
	base := personBase()
	slim := g.MustExtend(base, func(b *g.HashBuilder) {
		b.RemoveAttribute("last")
	})

	if got := slim.AttributeNames(); !reflect.DeepEqual(got, []string{"id", "first"}) {
		t.Fatalf("attributes = %v", got)
	}

	schema, err := slim.Schema(nil)
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	if !reflect.DeepEqual(normalize(t, schema["required"]), []any{"id", "first"}) {
		t.Fatalf("required = %v", schema["required"])
	}
}

func TestExtend_DoesNotInheritRefName(t *testing.T) {
	base := personBase()
	child := g.MustExtend(base, nil)
	if child.RefName() != "" {
		t.Fatalf("RefName inherited: %q", child.RefName())
	}
	named := g.MustExtend(base, func(b *g.HashBuilder) {
		b.Defines("Employee")
	})
	if named.RefName() != "Employee" {
		t.Fatalf("RefName = %q", named.RefName())
	}
}

func TestExtend_InheritsKeyTransformAndDefaults(t *testing.T) {
	base := g.Hash().
		KeyInflection(g.CamelLower).
		AttributeDefaults(serializers.Options{"allowMissingKey": true}).
		Attribute("first_name", "string?").
		MustBuild()

	child := g.MustExtend(base, func(b *g.HashBuilder) {
		b.Attribute("last_name", "string?")
	})

	out, err := child.Serialize(map[string]any{"first_name": "a"}, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := map[string]any{"firstName": "a", "lastName": nil}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("Serialize = %v, want %v", out, want)
	}
}

func TestNestedScope_DoesNotInheritAttributes(t *testing.T) {
	def := g.Hash().
		RegisterAlias("tag", serializers.String()).
		Attribute("outer", "string").
		HashAttribute("inner", nil, func(b *g.HashBuilder) {
			// inherited alias table is visible, inherited attributes are not
			b.Attribute("label", "tag")
		}).
		MustBuild()

	out, err := def.Serialize(map[string]any{
		"outer": "o",
		"inner": map[string]any{"label": "l"},
	}, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	inner := out.(map[string]any)["inner"].(map[string]any)
	if len(inner) != 1 || inner["label"] != "l" {
		t.Fatalf("nested output = %v", inner)
	}
}
