package expand

import "sync/atomic"

// Stats accumulates counters across one Expand call for ambient
// instrumentation. Never read by the expansion logic itself, so concurrent
// sibling-branch goroutines may update it without affecting the returned
// family.
type Stats struct {
	cutsApplied       int64
	rule3Applications int64
}

func (s *Stats) addCut() {
	if s != nil {
		atomic.AddInt64(&s.cutsApplied, 1)
	}
}

func (s *Stats) addRule3() {
	if s != nil {
		atomic.AddInt64(&s.rule3Applications, 1)
	}
}

// CutsApplied returns the number of cut-rule branch points taken.
func (s *Stats) CutsApplied() int64 {
	if s == nil {
		return 0
	}
	return atomic.LoadInt64(&s.cutsApplied)
}

// Rule3Applications returns the number of special ¬C-rule sibling sets
// produced.
func (s *Stats) Rule3Applications() int64 {
	if s == nil {
		return 0
	}
	return atomic.LoadInt64(&s.rule3Applications)
}
