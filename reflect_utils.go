package serializers

import "reflect"

// IsNilValue reports whether v is nil or a typed nil boxed in an interface
// (nil pointer, map, slice, chan, func, or interface).
func IsNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
