package tableau

import "github.com/rfielding/epistemic-tableau/formula"

// Result is the four-artifact aggregation of a Decide run, plus the
// ambient RunMetrics.
type Result struct {
	Satisfiable      bool
	InputFormula     formula.Formula
	Pretableau       *Pretableau
	InitialTableau   *Tableau
	FinalTableau     *Tableau
	EliminationTrace []EliminationRecord
	Metrics          RunMetrics
}
