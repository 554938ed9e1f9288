package harness

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/sandbox/internal/ir"
	"github.com/roach88/sandbox/internal/store"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, event := range e.Trace {
			fmt.Fprintf(&buf, "  [%d] %s %s\n", event.Seq, event.Op, formatValue(event.Args))
		}
	}

	return buf.String()
}

// AssertionContext provides what state assertions need to read back the
// step log.
type AssertionContext struct {
	Store *store.Store
	Ctx   context.Context
	RunID string
}

// EvaluateAssertions checks every assertion and returns one message per
// failure.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var failures []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertTraceContains:
			err = assertTraceContains(result.Trace, a)
		case AssertTraceOrder:
			err = assertTraceOrder(result.Trace, a)
		case AssertTraceCount:
			err = assertTraceCount(actx, result.Trace, a)
		case AssertFinalState:
			err = assertFinalState(actx, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			failures = append(failures, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return failures
}

// assertTraceContains checks that some step ran op with args matching the
// expected args (subset match).
func assertTraceContains(trace []TraceEvent, a Assertion) error {
	for _, event := range trace {
		if event.Op == a.Op && matchArgs(event.Args, a.Args) {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: fmt.Sprintf("op %s with args %s", a.Op, formatValue(normalizeArgs(a.Args))),
		Actual:   "not found in trace",
		Trace:    trace,
	}
}

// assertTraceOrder checks that the ops occur as a subsequence of the
// trace. Other steps may run in between.
func assertTraceOrder(trace []TraceEvent, a Assertion) error {
	next := 0
	for _, event := range trace {
		if next < len(a.Ops) && event.Op == a.Ops[next] {
			next++
		}
	}
	if next == len(a.Ops) {
		return nil
	}

	actual := fmt.Sprintf("%s not found after %v", a.Ops[next], a.Ops[:next])
	if next == 0 {
		actual = fmt.Sprintf("%s not found", a.Ops[0])
	}
	return &AssertionError{
		Type:     AssertTraceOrder,
		Expected: fmt.Sprintf("ops in order: %v", a.Ops),
		Actual:   actual,
		Trace:    trace,
	}
}

// assertTraceCount checks that op was recorded exactly Count times in the
// step log.
func assertTraceCount(actx *AssertionContext, trace []TraceEvent, a Assertion) error {
	count, err := actx.Store.CountSteps(actx.Ctx, actx.RunID, a.Op)
	if err != nil {
		return fmt.Errorf("count %s: %w", a.Op, err)
	}

	if count != a.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d occurrences of %s", a.Count, a.Op),
			Actual:   fmt.Sprintf("%d occurrences", count),
			Trace:    trace,
		}
	}
	return nil
}

// assertFinalState compares a stored container snapshot with the expected
// value under canonical JSON equality.
func assertFinalState(actx *AssertionContext, a Assertion) error {
	state, err := actx.Store.ReadState(actx.Ctx, actx.RunID, a.Component, a.Field)
	if errors.Is(err, store.ErrNotFound) {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("snapshot of %s.%s", a.Component, a.Field),
			Actual:   "no snapshot recorded",
		}
	}
	if err != nil {
		return err
	}

	want, err := ir.MarshalCanonical(normalizeValue(a.Expect))
	if err != nil {
		return fmt.Errorf("encode expected %s.%s: %w", a.Component, a.Field, err)
	}
	if string(want) != state.Data {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("%s.%s = %s", a.Component, a.Field, want),
			Actual:   fmt.Sprintf("%s.%s = %s", a.Component, a.Field, state.Data),
		}
	}
	return nil
}

// matchArgs reports whether actual contains every expected arg.
// Extra keys in actual are ignored.
func matchArgs(actual, expected map[string]any) bool {
	for key, want := range expected {
		got, ok := actual[key]
		if !ok || !canonicalEqual(want, got) {
			return false
		}
	}
	return true
}

// formatValue renders v as canonical JSON for messages, falling back to
// fmt when it cannot be encoded.
func formatValue(v any) string {
	data, err := ir.MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
