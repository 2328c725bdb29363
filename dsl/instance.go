package dsl

import (
	"fmt"
	"reflect"

	"github.com/iancoleman/strcase"

	serializers "github.com/fixdauto/simple-schema-serializers"
)

// Instance binds one input value and one set of call options for the
// duration of a single Serialize call. It is created per call and discarded;
// definitions never hold instance state.
type Instance struct {
	value any
	opts  serializers.Options
}

// Value returns the bound input value.
func (in *Instance) Value() any { return in.value }

// Options returns the bound call options.
func (in *Instance) Options() serializers.Options { return in.opts }

// resolveSource fetches the value named by source from the bound value.
// For map-shaped inputs the lookup order is exact key, then stringified key.
// For other inputs it is method, then exported field, trying the source name
// verbatim and then under snake_case normalization so "signed_up" and "id"
// reach SignedUp and ID. The second result reports whether the source was
// found at all; a non-nil error means the accessor itself failed and carries
// the raw cause for the caller to wrap.
func (in *Instance) resolveSource(source string) (any, bool, error) {
	rv := reflect.ValueOf(in.value)
	if !rv.IsValid() {
		return nil, false, nil
	}
	if rv.Kind() == reflect.Map {
		return mapLookup(rv, source)
	}
	if m, ok := methodNamed(rv, source); ok {
		v, err := callAccessor(m)
		return v, true, err
	}
	sv := rv
	if sv.Kind() == reflect.Ptr {
		if sv.IsNil() {
			return nil, false, nil
		}
		sv = sv.Elem()
	}
	if sv.Kind() == reflect.Struct {
		if f, ok := fieldNamed(sv, source); ok {
			return f.Interface(), true, nil
		}
	}
	return nil, false, nil
}

func methodNamed(rv reflect.Value, source string) (reflect.Value, bool) {
	if m := rv.MethodByName(source); m.IsValid() {
		return m, true
	}
	norm := strcase.ToSnake(source)
	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		if strcase.ToSnake(rt.Method(i).Name) == norm {
			return rv.Method(i), true
		}
	}
	return reflect.Value{}, false
}

func fieldNamed(sv reflect.Value, source string) (reflect.Value, bool) {
	st := sv.Type()
	if f, ok := st.FieldByName(source); ok && f.PkgPath == "" {
		return sv.FieldByIndex(f.Index), true
	}
	norm := strcase.ToSnake(source)
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if strcase.ToSnake(f.Name) == norm {
			return sv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func mapLookup(rv reflect.Value, source string) (any, bool, error) {
	key := reflect.ValueOf(source)
	if key.Type().AssignableTo(rv.Type().Key()) {
		if mv := rv.MapIndex(key); mv.IsValid() {
			return mv.Interface(), true, nil
		}
	}
	// fall back to stringified keys for maps not keyed by plain strings
	iter := rv.MapRange()
	for iter.Next() {
		if fmt.Sprintf("%v", iter.Key().Interface()) == source {
			return iter.Value().Interface(), true, nil
		}
	}
	return nil, false, nil
}

// callAccessor invokes a zero-argument accessor method, tolerating an
// optional trailing error result. Failures (wrong arity, returned error,
// panic) are reported as raw causes rather than swallowed.
func callAccessor(m reflect.Value) (v any, err error) {
	mt := m.Type()
	if mt.NumIn() != 0 {
		return nil, fmt.Errorf("accessor requires %d argument(s)", mt.NumIn())
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("accessor panicked: %v", r)
		}
	}()
	results := m.Call(nil)
	switch len(results) {
	case 1:
		return results[0].Interface(), nil
	case 2:
		if mt.Out(1).Implements(errType) {
			if !results[1].IsNil() {
				return nil, results[1].Interface().(error)
			}
			return results[0].Interface(), nil
		}
	}
	return nil, fmt.Errorf("unsupported accessor signature %s", mt)
}

var errType = reflect.TypeOf((*error)(nil)).Elem()
