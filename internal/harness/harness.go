package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/roach88/sandbox/internal/ir"
	"github.com/roach88/sandbox/internal/keyedmap"
	"github.com/roach88/sandbox/internal/sequence"
	"github.com/roach88/sandbox/internal/store"
	"github.com/roach88/sandbox/internal/testutil"
)

// Harness executes one scenario against its own containers and step log.
type Harness struct {
	store      *store.Store
	clock      *testutil.DeterministicClock
	containers *Containers
	logger     *slog.Logger
	runID      string
}

type config struct {
	logger *slog.Logger
	runIDs RunIDGenerator
}

// Option configures Run.
type Option func(*config)

// WithLogger sets the logger for the run and its containers. By default
// logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRunIDGenerator sets the generator used when a scenario does not pin
// run_id. The default is UUIDv7Generator.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(c *config) {
		if g != nil {
			c.runIDs = g
		}
	}
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database with fresh containers.
// Failed expectations and assertions are reported in Result.Errors; an
// error is returned only when the scenario cannot be executed at all
// (invalid scenario, bad arguments, storage failure).
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	cfg := config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		runIDs: UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateScenario(scenario); err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	runID := scenario.RunID
	if runID == "" {
		runID = cfg.runIDs.Generate()
	}

	h := &Harness{
		store: st,
		clock: testutil.NewDeterministicClock(),
		containers: &Containers{
			Sequence: sequence.New(
				sequence.WithRand(testutil.NewSeededRand(scenario.Seed)),
				sequence.WithLogger(cfg.logger),
			),
			KeyedMap: keyedmap.New(keyedmap.WithLogger(cfg.logger)),
		},
		logger: cfg.logger,
		runID:  runID,
	}

	ctx := context.Background()

	if err := st.WriteRun(ctx, store.Run{ID: runID, Scenario: scenario.Name, Seed: scenario.Seed}); err != nil {
		return nil, err
	}

	result := NewResult()
	result.RunID = runID

	if err := h.executeSteps(ctx, scenario.Steps, result); err != nil {
		return nil, err
	}
	if err := h.snapshotState(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to snapshot state: %w", err)
	}

	actx := &AssertionContext{Store: st, Ctx: ctx, RunID: runID}
	for _, msg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(msg)
	}

	h.logger.Info("scenario finished",
		"scenario", scenario.Name,
		"run_id", runID,
		"steps", len(result.Trace),
		"pass", result.Pass,
	)
	return result, nil
}

// executeSteps runs every step, records it and checks its expect clause.
func (h *Harness) executeSteps(ctx context.Context, steps []Step, result *Result) error {
	for i, step := range steps {
		fn, ok := ops[step.Op]
		if !ok {
			return &ScenarioError{Code: ErrCodeUnknownOp, Message: "unknown operation", Step: i, Op: step.Op}
		}

		out, err := fn(h.containers, Args(step.Args))
		if err != nil {
			var ae *argError
			if errors.As(err, &ae) {
				return &ScenarioError{Code: ErrCodeInvalidArgs, Message: ae.Error(), Step: i, Op: step.Op}
			}
			return fmt.Errorf("step %d: %w", i, err)
		}

		// seq is taken once per step; the step id depends on it.
		seq := h.clock.Next()
		args := normalizeArgs(step.Args)

		rec, err := h.store.WriteStep(ctx, h.runID, seq, step.Op, args, out)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}

		result.AddTrace(TraceEvent{
			Seq:    seq,
			Op:     step.Op,
			Args:   args,
			Result: out,
			StepID: rec.ID,
		})

		if step.Expect != nil {
			if msg, ok := compareResult(step.Expect.Result, out); !ok {
				result.AddError(fmt.Sprintf("step %d (%s): %s", i, step.Op, msg))
			}
		}

		h.logger.Debug("step executed",
			"step", i,
			"op", step.Op,
			"seq", seq,
			"step_id", rec.ID,
		)
	}
	return nil
}

// snapshotState records the final value of every container field.
func (h *Harness) snapshotState(ctx context.Context, result *Result) error {
	snapshots := []struct {
		component string
		field     string
		data      any
	}{
		{ComponentSequence, "integers", h.containers.Sequence.Ints()},
		{ComponentSequence, "strings", h.containers.Sequence.Strings()},
		{ComponentKeyedMap, "entries", h.containers.KeyedMap.Entries()},
	}
	for _, snap := range snapshots {
		if err := h.store.WriteState(ctx, h.runID, snap.component, snap.field, snap.data); err != nil {
			return err
		}
		result.State[snap.component+"."+snap.field] = snap.data
	}
	return nil
}

// compareResult reports whether actual matches the expected value under
// canonical JSON equality.
func compareResult(expected, actual any) (string, bool) {
	want, err := ir.MarshalCanonical(normalizeValue(expected))
	if err != nil {
		return fmt.Sprintf("cannot encode expected result: %v", err), false
	}
	got, err := ir.MarshalCanonical(actual)
	if err != nil {
		return fmt.Sprintf("cannot encode actual result: %v", err), false
	}
	if string(want) != string(got) {
		return fmt.Sprintf("expected result %s, got %s", want, got), false
	}
	return "", true
}

// canonicalEqual compares two values by their canonical JSON encoding.
func canonicalEqual(a, b any) bool {
	ja, err := ir.MarshalCanonical(normalizeValue(a))
	if err != nil {
		return false
	}
	jb, err := ir.MarshalCanonical(normalizeValue(b))
	if err != nil {
		return false
	}
	return string(ja) == string(jb)
}

// normalizeArgs copies args into a form canonical JSON accepts. A nil map
// becomes an empty one.
func normalizeArgs(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = normalizeValue(v)
	}
	return out
}

// normalizeValue replaces non-finite floats, which canonical JSON rejects,
// with their names so they can still be recorded and compared.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case float64:
		switch {
		case math.IsNaN(val):
			return "NaN"
		case math.IsInf(val, 1):
			return "+Inf"
		case math.IsInf(val, -1):
			return "-Inf"
		}
		return val
	case []float64:
		if val == nil {
			return nil
		}
		out := make([]any, len(val))
		for i, f := range val {
			out[i] = normalizeValue(f)
		}
		return out
	case []any:
		if val == nil {
			return nil
		}
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeValue(elem)
		}
		return out
	case map[string]any:
		return normalizeArgs(val)
	}
	return v
}
