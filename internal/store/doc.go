// Package store provides the SQLite-backed step log used by harness runs.
//
// The store is an append-only record of what a scenario did:
//   - Runs: one row per harness run (run id, scenario name, rng seed)
//   - Steps: every operation invoked on a container, with canonical JSON args
//     and result, stamped with a logical seq
//   - State: final container snapshots, queried by final_state assertions
//
// The harness always opens ":memory:", so the log lives exactly as long as
// the run. Nothing here is meant to outlive the process.
//
// # Critical Patterns
//
// Logical time only: ordering uses the seq column, never timestamps.
//
// Deterministic reads: every query orders by seq ASC, id ASC COLLATE BINARY
// so identical runs read back identically.
//
// Idempotent writes: step and state rows use ON CONFLICT DO NOTHING; steps
// carry content-addressed ids from ir.StepID.
package store
