package fluent

import (
	"reflect"
)

// IsNil reports whether i is absent: a nil interface or a nil pointer, map, slice,
// channel or func stored in one.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
