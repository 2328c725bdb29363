package serializers

import (
	"fmt"
	"math"
	"strconv"
	"time"

	j "github.com/goccy/go-json"

	js "github.com/fixdauto/simple-schema-serializers/jsonschema"
)

// String returns the primitive string serializer. Values are coerced the way
// fmt would render them; []byte and Stringer values are taken verbatim.
func String() Serializer { return stringSerializer{} }

// Integer returns the primitive integer serializer. Floats are accepted only
// when integral.
func Integer() Serializer { return integerSerializer{} }

// Float returns the primitive number serializer. The "round" option limits
// the emitted value to that many fractional digits.
func Float() Serializer { return floatSerializer{} }

// Boolean returns the primitive boolean serializer.
func Boolean() Serializer { return booleanSerializer{} }

// Date returns a serializer emitting ISO 8601 calendar dates (2006-01-02).
func Date() Serializer { return dateSerializer{} }

// DateTime returns a serializer emitting RFC 3339 timestamps.
func DateTime() Serializer { return dateTimeSerializer{} }

// ArbitraryHash returns a serializer passing string-keyed maps through
// unchanged. Map contents are not described beyond {"type": "object"}.
func ArbitraryHash() Serializer { return hashSerializer{} }

func primitiveSchema(allowed js.KeySet, base Options, opts Options) (map[string]any, error) {
	return js.Sanitize(allowed, MergeOptions(base, opts)), nil
}

type stringSerializer struct{}

func (stringSerializer) Serialize(v any, _ Options) (any, error) {
	if IsNilValue(v) {
		return nil, DeclErrf("cannot serialize nil as string; declare the attribute optional")
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (stringSerializer) Schema(opts Options) (map[string]any, error) {
	return primitiveSchema(js.Union(js.Common, js.String), Options{"type": "string"}, opts)
}

type integerSerializer struct{}

func (integerSerializer) Serialize(v any, _ Options) (any, error) {
	if IsNilValue(v) {
		return nil, DeclErrf("cannot serialize nil as integer; declare the attribute optional")
	}
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, DeclErrf("integer value %d overflows int64", t)
		}
		return int64(t), nil
	case float32:
		return integralFloat(float64(t))
	case float64:
		return integralFloat(t)
	case j.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, DeclErrf("cannot serialize %q as integer", string(t))
		}
		return integralFloat(f)
	default:
		return nil, DeclErrf("cannot serialize %T as integer", v)
	}
}

func integralFloat(f float64) (any, error) {
	if f != math.Trunc(f) {
		return nil, DeclErrf("cannot serialize non-integral number %v as integer", f)
	}
	return int64(f), nil
}

func (integerSerializer) Schema(opts Options) (map[string]any, error) {
	return primitiveSchema(js.Union(js.Common, js.Number), Options{"type": "integer"}, opts)
}

type floatSerializer struct{}

func (floatSerializer) Serialize(v any, opts Options) (any, error) {
	if IsNilValue(v) {
		return nil, DeclErrf("cannot serialize nil as number; declare the attribute optional")
	}
	var f float64
	switch t := v.(type) {
	case float32:
		f = float64(t)
	case float64:
		f = t
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case j.Number:
		var err error
		if f, err = t.Float64(); err != nil {
			return nil, DeclErrf("cannot serialize %q as number", string(t))
		}
	default:
		return nil, DeclErrf("cannot serialize %T as number", v)
	}
	if digits, ok := intOption(opts, "round"); ok {
		p := math.Pow10(digits)
		f = math.Round(f*p) / p
	}
	return f, nil
}

func (floatSerializer) Schema(opts Options) (map[string]any, error) {
	return primitiveSchema(js.Union(js.Common, js.Number), Options{"type": "number"}, opts)
}

// intOption reads an Options key as an int, tolerating the numeric types a
// decoded options map may carry.
func intOption(opts Options, key string) (int, bool) {
	if opts == nil {
		return 0, false
	}
	switch t := opts[key].(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case j.Number:
		if n, err := strconv.Atoi(string(t)); err == nil {
			return n, true
		}
	}
	return 0, false
}

type booleanSerializer struct{}

func (booleanSerializer) Serialize(v any, _ Options) (any, error) {
	if IsNilValue(v) {
		return nil, DeclErrf("cannot serialize nil as boolean; declare the attribute optional")
	}
	b, ok := v.(bool)
	if !ok {
		return nil, DeclErrf("cannot serialize %T as boolean", v)
	}
	return b, nil
}

func (booleanSerializer) Schema(opts Options) (map[string]any, error) {
	return primitiveSchema(js.Common, Options{"type": "boolean"}, opts)
}

const dateLayout = "2006-01-02"

type dateSerializer struct{}

func (dateSerializer) Serialize(v any, _ Options) (any, error) {
	if IsNilValue(v) {
		return nil, DeclErrf("cannot serialize nil as date; declare the attribute optional")
	}
	switch t := v.(type) {
	case time.Time:
		return t.Format(dateLayout), nil
	case *time.Time:
		return t.Format(dateLayout), nil
	case string:
		if _, err := time.Parse(dateLayout, t); err != nil {
			return nil, DeclErrf("cannot serialize %q as date: %v", t, err)
		}
		return t, nil
	default:
		return nil, DeclErrf("cannot serialize %T as date", v)
	}
}

func (dateSerializer) Schema(opts Options) (map[string]any, error) {
	return primitiveSchema(js.Union(js.Common, js.String), Options{"type": "string", "format": "date"}, opts)
}

type dateTimeSerializer struct{}

func (dateTimeSerializer) Serialize(v any, _ Options) (any, error) {
	if IsNilValue(v) {
		return nil, DeclErrf("cannot serialize nil as datetime; declare the attribute optional")
	}
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339), nil
	case *time.Time:
		return t.Format(time.RFC3339), nil
	case string:
		if _, err := time.Parse(time.RFC3339, t); err != nil {
			return nil, DeclErrf("cannot serialize %q as datetime: %v", t, err)
		}
		return t, nil
	default:
		return nil, DeclErrf("cannot serialize %T as datetime", v)
	}
}

func (dateTimeSerializer) Schema(opts Options) (map[string]any, error) {
	return primitiveSchema(js.Union(js.Common, js.String), Options{"type": "string", "format": "date-time"}, opts)
}

type hashSerializer struct{}

func (hashSerializer) Serialize(v any, _ Options) (any, error) {
	if IsNilValue(v) {
		return nil, DeclErrf("cannot serialize nil as hash; declare the attribute optional")
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = vv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprintf("%v", k)] = vv
		}
		return out, nil
	default:
		return nil, DeclErrf("cannot serialize %T as hash", v)
	}
}

func (hashSerializer) Schema(opts Options) (map[string]any, error) {
	return primitiveSchema(js.Union(js.Common, js.Object), Options{"type": "object"}, opts)
}
