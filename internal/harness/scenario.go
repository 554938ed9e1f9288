package harness

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted run against fresh sandbox containers.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description,omitempty"`

	// Seed seeds the random source behind sequence.generateIntegers.
	Seed uint64 `yaml:"seed,omitempty"`

	// RunID pins the run id. If empty, Run asks its RunIDGenerator.
	RunID string `yaml:"run_id,omitempty"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`

	// Assertions are evaluated after the last step.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step invokes one container operation.
type Step struct {
	// Op is "<component>.<operation>", e.g. "sequence.addInteger".
	Op string `yaml:"op"`

	// Args are the named operation arguments.
	Args map[string]any `yaml:"args,omitempty"`

	// Expect, when set, is compared against the operation result.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause holds the expected result of a step. A pointer is used so
// that an explicit `result: null` is distinguishable from no expectation.
type ExpectClause struct {
	Result any `yaml:"result"`
}

// Assertion validates the trace or the final state.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Op is the operation name (trace_contains, trace_count).
	Op string `yaml:"op,omitempty"`

	// Args are matched as a subset of the recorded args (trace_contains).
	Args map[string]any `yaml:"args,omitempty"`

	// Ops is the expected relative order (trace_order).
	Ops []string `yaml:"ops,omitempty"`

	// Count is the exact number of occurrences (trace_count).
	Count int `yaml:"count,omitempty"`

	// Component and Field select a container snapshot (final_state).
	Component string `yaml:"component,omitempty"`
	Field     string `yaml:"field,omitempty"`

	// Expect is the expected snapshot (final_state).
	Expect any `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
	AssertFinalState    = "final_state"
)

// stateFields lists the snapshot fields each component exposes.
var stateFields = map[string][]string{
	ComponentSequence: {"integers", "strings"},
	ComponentKeyedMap: {"entries"},
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

// ParseScenario parses scenario YAML. The document is checked against the
// embedded CUE schema, decoded strictly (unknown fields are rejected) and
// then validated for known operations and complete assertions.
func ParseScenario(data []byte) (*Scenario, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, invalidScenario("failed to parse YAML: %v", err)
	}
	// CUE numbers cannot hold NaN or infinities.
	if err := validateSchema(normalizeValue(doc)); err != nil {
		return nil, err
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, invalidScenario("failed to decode YAML: %v", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// validateScenario checks what the schema cannot: operation names and the
// fields each assertion type needs. It also guards scenarios built in Go.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return invalidScenario("name is required")
	}
	if len(s.Steps) == 0 {
		return invalidScenario("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if step.Op == "" {
			return &ScenarioError{Code: ErrCodeInvalidScenario, Message: "op is required", Step: i}
		}
		if !KnownOp(step.Op) {
			return &ScenarioError{Code: ErrCodeUnknownOp, Message: "unknown operation", Step: i, Op: step.Op}
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return invalidScenario("assertions[%d]: type is required", index)
	case AssertTraceContains:
		if a.Op == "" {
			return invalidScenario("assertions[%d]: op is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return invalidScenario("assertions[%d]: ops list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return invalidScenario("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count < 0 {
			return invalidScenario("assertions[%d]: count must be non-negative for trace_count", index)
		}
	case AssertFinalState:
		fields, ok := stateFields[a.Component]
		if !ok {
			return invalidScenario("assertions[%d]: unknown component %q for final_state", index, a.Component)
		}
		if !slices.Contains(fields, a.Field) {
			return invalidScenario("assertions[%d]: component %s has no field %q", index, a.Component, a.Field)
		}
	default:
		return invalidScenario("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
