package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ReadRun returns the run with the given id.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var run Run
	var seed int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, scenario, seed FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.Scenario, &seed)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run: %w", err)
	}
	run.Seed = uint64(seed)
	return run, nil
}

// ReadSteps returns every step of a run ordered by seq.
// Returns an empty slice (not nil) when the run has no steps.
func (s *Store) ReadSteps(ctx context.Context, runID string) ([]Step, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, seq, op, args, result
		FROM steps
		WHERE run_id = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()

	steps := []Step{}
	for rows.Next() {
		var st Step
		if err := rows.Scan(&st.ID, &st.RunID, &st.Seq, &st.Op, &st.Args, &st.Result); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		steps = append(steps, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate steps: %w", err)
	}
	return steps, nil
}

// CountSteps returns how many times op was recorded in a run.
func (s *Store) CountSteps(ctx context.Context, runID, op string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM steps WHERE run_id = ? AND op = ?
	`, runID, op).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count steps: %w", err)
	}
	return n, nil
}

// ReadState returns the snapshot of one container field.
func (s *Store) ReadState(ctx context.Context, runID, component, field string) (State, error) {
	st := State{RunID: runID, Component: component, Field: field}
	err := s.db.QueryRowContext(ctx, `
		SELECT data, hash FROM state
		WHERE run_id = ? AND component = ? AND field = ?
	`, runID, component, field).Scan(&st.Data, &st.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, fmt.Errorf("state %s.%s: %w", component, field, ErrNotFound)
	}
	if err != nil {
		return State{}, fmt.Errorf("read state: %w", err)
	}
	return st, nil
}
