package testutil

// DefaultRunID is used when a scenario does not pin its own run id.
const DefaultRunID = "test-run-default"

// FixedRunIDGenerator returns the same run id on every call.
//
// Harness runs stamp every recorded step with a run id; pinning it makes
// step ids, and therefore stored traces, byte-identical across runs.
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a generator for id. An empty id falls
// back to DefaultRunID.
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = DefaultRunID
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run id.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}
