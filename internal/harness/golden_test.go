package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sandbox/internal/ir"
)

func goldenMixedScenario() *Scenario {
	return &Scenario{
		Name:  "golden_mixed",
		RunID: "golden-run",
		Steps: []Step{
			{Op: "keyedmap.addString", Args: map[string]any{"value": "abc"}},
			{Op: "keyedmap.addString", Args: map[string]any{"value": "Hola"}},
			{Op: "keyedmap.keysSortedDescending"},
			{Op: "sequence.addInteger", Args: map[string]any{"value": 3}},
			{Op: "sequence.insertInteger", Args: map[string]any{"value": 1, "position": -4}},
			{Op: "sequence.sortIntegersDescending"},
			{Op: "sequence.copyIntegers"},
		},
	}
}

func TestRunWithGolden_Mixed(t *testing.T) {
	err := RunWithGolden(t, goldenMixedScenario())
	require.NoError(t, err)
}

func TestAssertGolden_ReusesResult(t *testing.T) {
	scenario := goldenMixedScenario()
	scenario.RunID = "another-run"

	result, err := Run(scenario)
	require.NoError(t, err)

	// Without a run id in the snapshot the trace is the same for any run.
	err = AssertGolden(t, "golden_mixed_no_run_id", result)
	require.NoError(t, err)
}

func TestTraceSnapshot_Deterministic(t *testing.T) {
	first, err := Run(goldenMixedScenario())
	require.NoError(t, err)
	second, err := Run(goldenMixedScenario())
	require.NoError(t, err)

	a := TraceSnapshot{ScenarioName: "golden_mixed", RunID: "golden-run", Trace: first.Trace}
	b := TraceSnapshot{ScenarioName: "golden_mixed", RunID: "golden-run", Trace: second.Trace}

	ja, err := a.MarshalCanonical()
	require.NoError(t, err)
	jb, err := b.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestTraceSnapshot_Shape(t *testing.T) {
	snapshot := TraceSnapshot{
		ScenarioName: "shape",
		Trace: []TraceEvent{
			{Seq: 1, Op: "keyedmap.smallestKey", Result: ir.None(), StepID: "ignored"},
			{Seq: 2, Op: "sequence.addString", Args: map[string]any{"value": "<&>"}},
		},
	}

	data, err := snapshot.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t,
		`{"scenario_name":"shape","trace":[{"args":{},"op":"keyedmap.smallestKey","result":null,"seq":1},{"args":{"value":"<&>"},"op":"sequence.addString","result":null,"seq":2}]}`,
		string(data))
}
