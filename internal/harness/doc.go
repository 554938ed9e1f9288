// Package harness runs scripted scenarios against fresh sandbox containers.
//
// A scenario names a list of operations on the sequence store and the keyed
// string map, optionally with expected results, followed by assertions over
// the recorded trace and the final container state. Every run is
// deterministic: logical seq numbers come from a deterministic clock,
// sequence.generateIntegers draws from a PCG source seeded by the scenario,
// and the run id can be pinned for golden comparison.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	seed: 7                 # optional, default 0
//	run_id: pinned-run      # optional, generated UUIDv7 otherwise
//	steps:
//	  - op: sequence.addInteger
//	    args: { value: 3 }
//	  - op: sequence.countOccurrences
//	    args: { value: 3 }
//	    expect:
//	      result: 1
//	assertions:
//	  - type: trace_count
//	    op: sequence.addInteger
//	    count: 1
//	  - type: final_state
//	    component: sequence
//	    field: integers
//	    expect: [3]
//
// Files are validated against an embedded CUE schema before they are
// decoded, so typos and malformed steps fail with a position.
//
// # Assertion Types
//
//   - trace_contains: an op appears in the trace with matching args (subset)
//   - trace_order: ops appear in the given order
//   - trace_count: an op appears exactly N times
//   - final_state: a container field equals the expected value
//
// # Recording
//
// Each run opens a private in-memory SQLite step log (package store). Steps,
// final state snapshots and the run record are written there; trace_count
// and final_state assertions read them back.
package harness
