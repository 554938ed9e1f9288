package harness

import (
	"fmt"
	"math"

	"github.com/roach88/sandbox/internal/ir"
)

// Args are the named arguments of one step, as decoded from YAML or built
// in Go. Lookup methods return an *argError that the runner wraps into a
// ScenarioError with the step position.
type Args map[string]any

type argError struct {
	name string
	msg  string
}

func (e *argError) Error() string {
	return fmt.Sprintf("argument %q: %s", e.name, e.msg)
}

func argErrorf(name, format string, args ...any) error {
	return &argError{name: name, msg: fmt.Sprintf(format, args...)}
}

// Int returns a required integer argument. Integral floats are accepted
// because YAML and JSON decoders may produce them.
func (a Args) Int(name string) (int, error) {
	v, ok := a[name]
	if !ok {
		return 0, argErrorf(name, "is required")
	}
	n, ok := toInt(v)
	if !ok {
		return 0, argErrorf(name, "expected integer, got %T", v)
	}
	return n, nil
}

// Str returns a required optional-string argument: null maps to ir.None.
func (a Args) Str(name string) (ir.Str, error) {
	v, ok := a[name]
	if !ok {
		return ir.None(), argErrorf(name, "is required")
	}
	s, ok := toStr(v)
	if !ok {
		return ir.None(), argErrorf(name, "expected string or null, got %T", v)
	}
	return s, nil
}

// Floats returns a list of numbers. A missing or null argument is absent
// and yields a nil slice.
func (a Args) Floats(name string) ([]float64, error) {
	v := a[name]
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []float64:
		return append([]float64{}, list...), nil
	case []int:
		out := make([]float64, len(list))
		for i, n := range list {
			out[i] = float64(n)
		}
		return out, nil
	case []any:
		out := make([]float64, len(list))
		for i, elem := range list {
			f, ok := toFloat(elem)
			if !ok {
				return nil, argErrorf(name, "element %d: expected number, got %T", i, elem)
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, argErrorf(name, "expected list of numbers or null, got %T", v)
}

// Ints returns a list of integers. A missing or null argument yields nil.
func (a Args) Ints(name string) ([]int, error) {
	v := a[name]
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []int:
		return append([]int{}, list...), nil
	case []any:
		out := make([]int, len(list))
		for i, elem := range list {
			n, ok := toInt(elem)
			if !ok {
				return nil, argErrorf(name, "element %d: expected integer, got %T", i, elem)
			}
			out[i] = n
		}
		return out, nil
	}
	return nil, argErrorf(name, "expected list of integers or null, got %T", v)
}

// Strs returns a list of optional strings. A missing or null argument
// yields nil; null elements become ir.None.
func (a Args) Strs(name string) ([]ir.Str, error) {
	v := a[name]
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return ir.Strs(list...), nil
	case []ir.Str:
		return append([]ir.Str{}, list...), nil
	case []any:
		out := make([]ir.Str, len(list))
		for i, elem := range list {
			s, ok := toStr(elem)
			if !ok {
				return nil, argErrorf(name, "element %d: expected string or null, got %T", i, elem)
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, argErrorf(name, "expected list of strings or null, got %T", v)
}

// Objects returns a list of arbitrary values. A missing or null argument
// yields nil; null elements stay nil.
func (a Args) Objects(name string) ([]any, error) {
	v := a[name]
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return append([]any{}, list...), nil
	case []string:
		out := make([]any, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out, nil
	}
	return nil, argErrorf(name, "expected list or null, got %T", v)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.Abs(n) >= 1<<63 {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toStr(v any) (ir.Str, bool) {
	switch s := v.(type) {
	case nil:
		return ir.None(), true
	case string:
		return ir.Some(s), true
	case ir.Str:
		return s, true
	}
	return ir.None(), false
}
