package harness

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenarioYAML = `
name: parse_ok
description: "parses every field"
seed: 9
run_id: pinned
steps:
  - op: sequence.addInteger
    args: { value: 3 }
  - op: keyedmap.smallestKey
    expect:
      result: null
  - op: sequence.countOccurrences
    args: { value: 3 }
    expect:
      result: 1
assertions:
  - type: trace_contains
    op: sequence.addInteger
    args: { value: 3 }
  - type: trace_order
    ops: [sequence.addInteger, sequence.countOccurrences]
  - type: trace_count
    op: sequence.addInteger
    count: 1
  - type: final_state
    component: sequence
    field: integers
    expect: [3]
`

func TestParseScenario_Valid(t *testing.T) {
	s, err := ParseScenario([]byte(validScenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "parse_ok", s.Name)
	assert.Equal(t, "parses every field", s.Description)
	assert.Equal(t, uint64(9), s.Seed)
	assert.Equal(t, "pinned", s.RunID)

	require.Len(t, s.Steps, 3)
	assert.Equal(t, "sequence.addInteger", s.Steps[0].Op)
	assert.Equal(t, map[string]any{"value": 3}, s.Steps[0].Args)
	assert.Nil(t, s.Steps[0].Expect)

	require.NotNil(t, s.Steps[1].Expect, "explicit null result is still an expectation")
	assert.Nil(t, s.Steps[1].Expect.Result)
	assert.Equal(t, 1, s.Steps[2].Expect.Result)

	require.Len(t, s.Assertions, 4)
	assert.Equal(t, AssertTraceContains, s.Assertions[0].Type)
	assert.Equal(t, []string{"sequence.addInteger", "sequence.countOccurrences"}, s.Assertions[1].Ops)
	assert.Equal(t, 1, s.Assertions[2].Count)
	assert.Equal(t, "sequence", s.Assertions[3].Component)
	assert.Equal(t, "integers", s.Assertions[3].Field)
	assert.Equal(t, []any{3}, s.Assertions[3].Expect)
}

func TestParseScenario_NonFiniteArgs(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: nan_args
steps:
  - op: sequence.resetIntegersFrom
    args: { values: [.nan, .inf, -.inf] }
`))
	require.NoError(t, err)

	values := s.Steps[0].Args["values"].([]any)
	require.Len(t, values, 3)
	assert.True(t, math.IsNaN(values[0].(float64)))
	assert.True(t, math.IsInf(values[1].(float64), 1))
	assert.True(t, math.IsInf(values[2].(float64), -1))
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "name: [unclosed"},
		{"missing name", "steps:\n  - op: sequence.addInteger\n    args: {value: 1}\n"},
		{"bad name", "name: has spaces\nsteps:\n  - op: sequence.countIntegers\n"},
		{"no steps", "name: empty\nsteps: []\n"},
		{"unknown top-level field", "name: typo\nstep:\n  - op: sequence.countIntegers\n"},
		{"unknown step field", "name: typo\nsteps:\n  - op: sequence.countIntegers\n    expected: {result: 0}\n"},
		{"malformed op", "name: bad_op\nsteps:\n  - op: addInteger\n"},
		{"expect without result", "name: no_result\nsteps:\n  - op: sequence.countIntegers\n    expect: {}\n"},
		{"negative seed", "name: seed\nseed: -1\nsteps:\n  - op: sequence.countIntegers\n"},
		{"unknown assertion type", "name: a\nsteps:\n  - op: sequence.countIntegers\nassertions:\n  - type: trace_exists\n"},
		{"unknown state field", "name: a\nsteps:\n  - op: sequence.countIntegers\nassertions:\n  - type: final_state\n    component: sequence\n    field: entries\n    expect: {}\n"},
		{"trace_count without op", "name: a\nsteps:\n  - op: sequence.countIntegers\nassertions:\n  - type: trace_count\n    count: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, IsInvalidScenarioError(err), "got %v", err)
		})
	}
}

func TestParseScenario_UnknownOp(t *testing.T) {
	_, err := ParseScenario([]byte("name: unknown\nsteps:\n  - op: sequence.countIntegers\n  - op: sequence.shuffle\n"))
	require.Error(t, err)
	assert.True(t, IsUnknownOpError(err))

	var se *ScenarioError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Step)
	assert.Equal(t, "sequence.shuffle", se.Op)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validScenarioYAML), 0644))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "parse_ok", s.Name)
}

func TestLoadScenario_Errors(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nsteps: []\n"), 0644))
	_, err = LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.True(t, IsInvalidScenarioError(err))
}

func TestValidateScenario_GoBuilt(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		check    func(error) bool
	}{
		{
			name:     "missing name",
			scenario: Scenario{Steps: []Step{{Op: "sequence.countIntegers"}}},
			check:    IsInvalidScenarioError,
		},
		{
			name:     "no steps",
			scenario: Scenario{Name: "x"},
			check:    IsInvalidScenarioError,
		},
		{
			name:     "empty op",
			scenario: Scenario{Name: "x", Steps: []Step{{}}},
			check:    IsInvalidScenarioError,
		},
		{
			name:     "unknown op",
			scenario: Scenario{Name: "x", Steps: []Step{{Op: "keyedmap.clear"}}},
			check:    IsUnknownOpError,
		},
		{
			name: "trace_order without ops",
			scenario: Scenario{
				Name:       "x",
				Steps:      []Step{{Op: "sequence.countIntegers"}},
				Assertions: []Assertion{{Type: AssertTraceOrder}},
			},
			check: IsInvalidScenarioError,
		},
		{
			name: "negative count",
			scenario: Scenario{
				Name:       "x",
				Steps:      []Step{{Op: "sequence.countIntegers"}},
				Assertions: []Assertion{{Type: AssertTraceCount, Op: "sequence.countIntegers", Count: -1}},
			},
			check: IsInvalidScenarioError,
		},
		{
			name: "unknown component",
			scenario: Scenario{
				Name:       "x",
				Steps:      []Step{{Op: "sequence.countIntegers"}},
				Assertions: []Assertion{{Type: AssertFinalState, Component: "queue", Field: "items"}},
			},
			check: IsInvalidScenarioError,
		},
		{
			name: "missing assertion type",
			scenario: Scenario{
				Name:       "x",
				Steps:      []Step{{Op: "sequence.countIntegers"}},
				Assertions: []Assertion{{Op: "sequence.countIntegers"}},
			},
			check: IsInvalidScenarioError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateScenario(&tt.scenario)
			require.Error(t, err)
			assert.True(t, tt.check(err), "got %v", err)
		})
	}
}
