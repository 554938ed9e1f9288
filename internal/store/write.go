package store

import (
	"context"
	"fmt"

	"github.com/roach88/sandbox/internal/ir"
)

// WriteRun inserts a run record. Writing the same run id twice is a no-op.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, scenario, seed)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.Scenario, int64(run.Seed))
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteStep records an operation. args and result are serialized to
// canonical JSON; the step id is derived from run id, op, args and seq.
// Duplicate ids are silently ignored.
func (s *Store) WriteStep(ctx context.Context, runID string, seq int64, op string, args map[string]any, result any) (Step, error) {
	argsJSON, err := ir.MarshalCanonical(args)
	if err != nil {
		return Step{}, fmt.Errorf("write step: marshal args: %w", err)
	}
	resultJSON, err := ir.MarshalCanonical(result)
	if err != nil {
		return Step{}, fmt.Errorf("write step: marshal result: %w", err)
	}
	id, err := ir.StepID(runID, op, args, seq)
	if err != nil {
		return Step{}, fmt.Errorf("write step: %w", err)
	}

	step := Step{
		ID:     id,
		RunID:  runID,
		Seq:    seq,
		Op:     op,
		Args:   string(argsJSON),
		Result: string(resultJSON),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO steps (id, run_id, seq, op, args, result)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, step.ID, step.RunID, step.Seq, step.Op, step.Args, step.Result)
	if err != nil {
		return Step{}, fmt.Errorf("write step: %w", err)
	}
	return step, nil
}

// WriteState records the final snapshot of one container field.
func (s *Store) WriteState(ctx context.Context, runID, component, field string, data any) error {
	dataJSON, err := ir.MarshalCanonical(data)
	if err != nil {
		return fmt.Errorf("write state: marshal: %w", err)
	}
	hash, err := ir.SnapshotHash(data)
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state (run_id, component, field, data, hash)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, runID, component, field, string(dataJSON), hash)
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
