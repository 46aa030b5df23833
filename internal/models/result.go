package models

import "time"

// Behavior run status constants
const (
	StatusDone   = "DONE"   // Behavior ran to completion
	StatusFailed = "FAILED" // Behavior returned an error
)

// BehaviorResult represents the outcome of running a single behavior
type BehaviorResult struct {
	Index    int           // Position of the behavior in its batch (1-based)
	Name     string        // Command name of the behavior
	Type     BehaviorType  // Type tag of the behavior
	Status   string        // Status: "DONE", "FAILED"
	Error    error         // Error if the behavior failed
	Duration time.Duration // Time taken to run
}

// BatchResult represents the aggregate outcome of a batch run
type BatchResult struct {
	RunID     string          // Identifier of the invocation
	Total     int             // Number of behaviors selected
	Completed int             // Number of behaviors that ran to completion
	Duration  time.Duration   // Total run time
	Failed    *BehaviorResult // Behavior that stopped the batch, nil on success
}

// Skipped returns how many selected behaviors never ran.
func (r BatchResult) Skipped() int {
	skipped := r.Total - r.Completed
	if r.Failed != nil {
		skipped--
	}
	if skipped < 0 {
		return 0
	}
	return skipped
}
