// Package reflectkit holds the reflection helpers the traversal packages need
// to reason about values of an unknown element type.
package reflectkit

import "reflect"

// IsNil reports whether v holds an absent value:
// an untyped nil interface or a nil value of a nillable kind.
// Values of non-nillable kinds are never absent, including their zero values.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	return IsValueNil(reflect.ValueOf(v))
}

func IsValueNil(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Slice, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	case reflect.Invalid:
		return true
	default:
		return false
	}
}
