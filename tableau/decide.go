package tableau

import (
	"time"

	"github.com/rfielding/epistemic-tableau/expand"
	"github.com/rfielding/epistemic-tableau/formula"
)

// Decide runs the full three-phase pipeline: Phase 1 construction, Phase 2
// prestate elimination, Phase 3 state elimination, then reports θ
// satisfiable iff some surviving state in the final tableau contains θ.
func Decide(root formula.Formula, opts Options) *Result {
	start := time.Now()
	stats := &expand.Stats{}

	a := newArena()
	opts.notify(StageConstruction)
	pretableau := construct(a, root, opts, stats)

	opts.notify(StagePrestateElim)
	initial := eliminatePrestates(pretableau)

	opts.notify(StageStateElim)
	final, trace, rounds := eliminateStates(initial)

	opts.notify(StageVerdict)
	sat := survives(final, root)

	return &Result{
		Satisfiable:      sat,
		InputFormula:     root,
		Pretableau:       pretableau,
		InitialTableau:   initial,
		FinalTableau:     final,
		EliminationTrace: trace,
		Metrics: RunMetrics{
			PrestatesCreated:  len(pretableau.Prestates),
			StatesCreated:     len(pretableau.States),
			CutsApplied:       stats.CutsApplied(),
			Rule3Applications: stats.Rule3Applications(),
			EliminationRounds: rounds,
			Duration:          time.Since(start),
		},
	}
}

func survives(final *Tableau, root formula.Formula) bool {
	for _, n := range final.States {
		if n.Formulas.Contains(root) {
			return true
		}
	}
	return false
}
