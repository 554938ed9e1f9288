package store

// Run identifies one harness execution.
type Run struct {
	ID       string
	Scenario string
	Seed     uint64
}

// Step is one recorded container operation. Args and Result hold canonical
// JSON text.
type Step struct {
	ID     string
	RunID  string
	Seq    int64
	Op     string
	Args   string
	Result string
}

// State is a final snapshot of one container field. Data holds canonical
// JSON text; Hash is ir.SnapshotHash of the same value.
type State struct {
	RunID     string
	Component string
	Field     string
	Data      string
	Hash      string
}
