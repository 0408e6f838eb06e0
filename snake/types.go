package snake

import (
	"github.com/google/uuid"

	"github.com/rofi-go/rofi/configuration"
)

// StageReport summarizes one pipeline stage's outcome, suitable for
// streaming to a progress log.
type StageReport struct {
	Name       string `json:"name"`
	Finished   bool   `json:"finished"`
	Iterations int    `json:"iterations"`
}

// Result is the outcome of ReconfigToSnake or ReconfigBetween: the full
// concatenated path (including the starting configuration), whether
// every stage completed, and a per-stage report trail. RunID identifies
// this one planner invocation, so a caller streaming StageReports to a
// log (cmd/snake's --log) can tell concurrent runs apart.
type Result struct {
	RunID        uuid.UUID
	Path         []*configuration.Configuration
	Finished     bool
	StageReports []StageReport
}

// Options bounds each stage's search effort. The defaults follow the
// design notes' beam sizes: aeration uses a beam of 2n², tree-to-snake's
// internal re-aeration uses 3n.
type Options struct {
	AerateBeamWidth       func(n int) int
	TreeToSnakeBeamWidth  func(n int) int
	MaxTreeToSnakeRounds  int
	MaxFixParityRounds    int
	MaxFixDocksIterations int
}

// DefaultOptions returns the design notes' stated bounds.
func DefaultOptions() Options {
	return Options{
		AerateBeamWidth:       func(n int) int { return 2 * n * n },
		TreeToSnakeBeamWidth:  func(n int) int { return 3 * n },
		MaxTreeToSnakeRounds:  64,
		MaxFixParityRounds:    64,
		MaxFixDocksIterations: 256,
	}
}
