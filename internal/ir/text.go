package ir

import (
	"fmt"
	"reflect"
)

// Text returns the canonical string representation of v.
//
// A nil value, a nil pointer/interface/func/chan, and an absent Str all
// render as the literal "null". Everything else uses its default fmt
// conversion, so fmt.Stringer and error implementations are honoured.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case Str:
		return val.String()
	case *Str:
		if val == nil {
			return "null"
		}
		return val.String()
	case string:
		return val
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return "null"
		}
	}
	return fmt.Sprint(v)
}
