package tableau

import "time"

// RunMetrics is ambient instrumentation attached to every Result: counters
// and timing for one Decide call. Pure bookkeeping, never consulted by the
// decision procedure itself, and computed without any I/O inside the core;
// rendering belongs to the telemetry package at the boundary.
type RunMetrics struct {
	PrestatesCreated  int
	StatesCreated     int
	CutsApplied       int64
	Rule3Applications int64
	EliminationRounds int
	Duration          time.Duration
}
