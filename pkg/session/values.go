package session

import (
	"math"
	"reflect"
	"time"
)

// truthy mirrors the loose truthiness custom fields were historically read
// with: nil, false, zero numbers, NaN and empty strings are falsy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case int:
		return x != 0
	case int64:
		return x != 0
	case int32:
		return x != 0
	case uint:
		return x != 0
	case uint64:
		return x != 0
	case uint32:
		return x != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// isObject reports whether v is a JSON object or array, in decoded or
// native form.
func isObject(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	case nil:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Struct:
		return true
	case reflect.Pointer:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	}
	return false
}

// millis reads a unix millisecond timestamp stored natively or decoded
// from JSON.
func millis(v any) (time.Time, bool) {
	var ms int64
	switch x := v.(type) {
	case int64:
		ms = x
	case int:
		ms = int64(x)
	case float64:
		ms = int64(x)
	default:
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
