// Package closure computes subformula sets, the Fischer-Ladner-style
// closure and extended closure of a formula, and the patent-inconsistency
// check that anchors termination and soundness throughout the rest of the
// engine.
package closure

import (
	"github.com/rfielding/epistemic-tableau/classify"
	"github.com/rfielding/epistemic-tableau/formula"
)

// Subformulas returns every node of f's formula tree, including f itself.
func Subformulas(f formula.Formula) *formula.Set {
	out := formula.NewSet()
	collectSub(f, out)
	return out
}

func collectSub(f formula.Formula, out *formula.Set) {
	if !out.Add(f) {
		return
	}
	switch v := f.(type) {
	case formula.NotFormula:
		collectSub(v.Sub, out)
	case formula.AndFormula:
		collectSub(v.Left, out)
		collectSub(v.Right, out)
	case formula.DFormula:
		collectSub(v.Sub, out)
	case formula.CFormula:
		collectSub(v.Sub, out)
	}
}

// Closure computes cl(φ): the least set containing φ, closed under
// α-/β-components, and such that ¬D_A ψ ∈ cl(φ) implies ¬ψ ∈ cl(φ).
func Closure(f formula.Formula) *formula.Set {
	out := formula.NewSet()
	worklist := []formula.Formula{f}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if !out.Add(cur) {
			continue
		}
		cls := classify.Classify(cur)
		worklist = append(worklist, cls.Components...)
		if _, psi, ok := formula.AsDiamond(cur); ok {
			worklist = append(worklist, formula.Not(psi))
		}
	}
	return out
}

// ExtendedClosure computes ecl(φ) = { ψ, ¬ψ : ψ ∈ cl(φ) }.
func ExtendedClosure(f formula.Formula) *formula.Set {
	cl := Closure(f)
	out := formula.NewSet()
	for _, psi := range cl.Formulas() {
		out.Add(psi)
		out.Add(formula.Not(psi))
	}
	return out
}

// IsPatentlyInconsistent reports whether Δ contains both ψ and ¬ψ for some
// ψ.
func IsPatentlyInconsistent(delta *formula.Set) bool {
	for _, f := range delta.Formulas() {
		if delta.Contains(formula.Not(f)) {
			return true
		}
	}
	return false
}
