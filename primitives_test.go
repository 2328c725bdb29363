package serializers_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	serializers "github.com/fixdauto/simple-schema-serializers"
)

// normalize marshals v to JSON and unmarshals back to remove type and
// ordering effects.
func normalize(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("normalize marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("normalize unmarshal: %v", err)
	}
	return out
}

func wantDeclarationError(t *testing.T, err error) *serializers.DeclarationError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected DeclarationError, got nil")
	}
	var de *serializers.DeclarationError
	if !errors.As(err, &de) {
		t.Fatalf("expected DeclarationError, got %T: %v", err, err)
	}
	return de
}

type stamp struct{}

func (stamp) String() string { return "stamped" }

func TestString_Serialize(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"plain", "x", "x"},
		{"bytes", []byte("raw"), "raw"},
		{"stringer", stamp{}, "stamped"},
		{"coerced", 42, "42"},
	}
	s := serializers.String()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Serialize(tc.in, nil)
			if err != nil {
				t.Fatalf("Serialize(%v): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Serialize(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	_, err := s.Serialize(nil, nil)
	wantDeclarationError(t, err)
}

func TestInteger_Serialize(t *testing.T) {
	s := serializers.Integer()
	for _, in := range []any{5, int8(5), uint16(5), int64(5), float64(5), json.Number("5")} {
		got, err := s.Serialize(in, nil)
		if err != nil {
			t.Fatalf("Serialize(%v): %v", in, err)
		}
		if got != int64(5) {
			t.Fatalf("Serialize(%v) = %v (%T), want int64(5)", in, got, got)
		}
	}

	if _, err := s.Serialize(5.5, nil); err == nil {
		t.Fatalf("expected error for non-integral float")
	}
	if _, err := s.Serialize("5", nil); err == nil {
		t.Fatalf("expected error for string input")
	}
}

func TestFloat_RoundOption(t *testing.T) {
	s := serializers.Float()
	got, err := s.Serialize(3.14159, serializers.Options{"round": 2})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != 3.14 {
		t.Fatalf("Serialize = %v, want 3.14", got)
	}

	// without the option the value passes through untouched
	got, err = s.Serialize(3.14159, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != 3.14159 {
		t.Fatalf("Serialize = %v, want 3.14159", got)
	}
}

func TestBoolean_Serialize(t *testing.T) {
	s := serializers.Boolean()
	got, err := s.Serialize(true, nil)
	if err != nil || got != true {
		t.Fatalf("Serialize(true) = %v, %v", got, err)
	}
	if _, err := s.Serialize("true", nil); err == nil {
		t.Fatalf("expected error for string input")
	}
}

func TestDate_Serialize(t *testing.T) {
	s := serializers.Date()
	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got, err := s.Serialize(day, nil)
	if err != nil || got != "2024-05-01" {
		t.Fatalf("Serialize(time) = %v, %v", got, err)
	}
	got, err = s.Serialize("2024-05-01", nil)
	if err != nil || got != "2024-05-01" {
		t.Fatalf("Serialize(string) = %v, %v", got, err)
	}
	if _, err := s.Serialize("05/01/2024", nil); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestDateTime_Serialize(t *testing.T) {
	s := serializers.DateTime()
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	got, err := s.Serialize(at, nil)
	if err != nil || got != "2024-05-01T09:30:00Z" {
		t.Fatalf("Serialize(time) = %v, %v", got, err)
	}
}

func TestArbitraryHash_Serialize(t *testing.T) {
	s := serializers.ArbitraryHash()
	got, err := s.Serialize(map[any]any{1: "a", "b": 2}, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := map[string]any{"1": "a", "b": 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Serialize = %v, want %v", got, want)
	}
}

func TestPrimitive_Schemas(t *testing.T) {
	cases := []struct {
		name string
		s    serializers.Serializer
		opts serializers.Options
		want map[string]any
	}{
		{"string", serializers.String(), nil, map[string]any{"type": "string"}},
		{"integer", serializers.Integer(), nil, map[string]any{"type": "integer"}},
		{"float", serializers.Float(), nil, map[string]any{"type": "number"}},
		{"boolean", serializers.Boolean(), nil, map[string]any{"type": "boolean"}},
		{"date", serializers.Date(), nil, map[string]any{"type": "string", "format": "date"}},
		{"datetime", serializers.DateTime(), nil, map[string]any{"type": "string", "format": "date-time"}},
		{"hash", serializers.ArbitraryHash(), nil, map[string]any{"type": "object"}},
		{
			// passthrough keys survive; unrecognized and runtime keys are dropped
			"passthrough",
			serializers.String(),
			serializers.Options{"enum": []any{"a", "b"}, "round": 2, "bogus": true, "useRefs": false},
			map[string]any{"type": "string", "enum": []any{"a", "b"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.s.Schema(tc.opts)
			if err != nil {
				t.Fatalf("Schema: %v", err)
			}
			if !reflect.DeepEqual(normalize(t, got), normalize(t, tc.want)) {
				t.Fatalf("schema mismatch\n got=%v\nwant=%v", got, tc.want)
			}
		})
	}
}

func TestSchema_Idempotent(t *testing.T) {
	s := serializers.Optional(serializers.Integer())
	first, err := s.Schema(nil)
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	second, err := s.Schema(nil)
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("schema not idempotent:\nfirst=%v\nsecond=%v", first, second)
	}
}
