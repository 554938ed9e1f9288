package harness

// TraceEvent is one executed operation as seen by assertions and golden
// files.
type TraceEvent struct {
	Seq    int64          `json:"seq"`
	Op     string         `json:"op"`
	Args   map[string]any `json:"args"`
	Result any            `json:"result"`

	// StepID is the content-addressed id written to the step log. It is
	// excluded from golden snapshots because it depends on the run id.
	StepID string `json:"-"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// RunID identifies the run in the step log.
	RunID string `json:"run_id"`

	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace holds every executed operation in seq order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation and assertion failures.
	Errors []string `json:"errors,omitempty"`

	// State holds the final container snapshots keyed by
	// "<component>.<field>".
	State map[string]any `json:"state,omitempty"`
}

// NewResult creates a passing result with no trace.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
		State:  make(map[string]any),
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an executed operation.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
