package expand

import (
	"github.com/rfielding/epistemic-tableau/agent"
	"github.com/rfielding/epistemic-tableau/formula"
)

// sideConditionHolds evaluates the restricted-cut side-conditions C1/C2 for
// cutting on chi in the context of the ambient formula psi, given the
// current set delta (which supplies the witnessing diamond ¬D_E ε).
func sideConditionHolds(delta *formula.Set, chi, psi formula.Formula) bool {
	switch c := chi.(type) {
	case formula.DFormula: // C1: cut on D_A φ
		A := c.Coalition
		switch p := psi.(type) {
		case formula.DFormula: // C11: ψ = D_B δ
			B := p.Coalition
			return existsDiamond(delta, func(E agent.Coalition) bool {
				return A.Subset(E) && B.Subset(E)
			})
		case formula.NotFormula:
			if inner, ok := p.Sub.(formula.DFormula); ok { // C11: ψ = ¬D_B δ
				B := inner.Coalition
				return existsDiamond(delta, func(E agent.Coalition) bool {
					return A.Subset(E) && B.Subset(E)
				})
			}
			if inner, ok := p.Sub.(formula.CFormula); ok { // C12: ψ = ¬C_B δ
				B := inner.Coalition
				return existsDiamond(delta, func(E agent.Coalition) bool {
					return A.Subset(E) && B.Intersects(E)
				})
			}
		}
		return false

	case formula.CFormula: // C2: cut on C_A φ
		A := c.Coalition
		switch p := psi.(type) {
		case formula.DFormula: // C21: ψ = D_B δ
			B := p.Coalition
			return existsDiamond(delta, func(E agent.Coalition) bool {
				return B.Subset(E) && A.Intersects(E)
			})
		case formula.NotFormula:
			if inner, ok := p.Sub.(formula.DFormula); ok { // C21: ψ = ¬D_B δ
				B := inner.Coalition
				return existsDiamond(delta, func(E agent.Coalition) bool {
					return B.Subset(E) && A.Intersects(E)
				})
			}
			if inner, ok := p.Sub.(formula.CFormula); ok { // C22: ψ = ¬C_B δ
				B := inner.Coalition
				return existsDiamond(delta, func(E agent.Coalition) bool {
					return A.Intersects(E) && B.Intersects(E)
				})
			}
		}
		return false
	}
	return false
}

// existsDiamond reports whether delta contains some diamond formula
// ¬D_E ε with pred(E) true.
func existsDiamond(delta *formula.Set, pred func(E agent.Coalition) bool) bool {
	for _, f := range delta.Formulas() {
		E, _, ok := formula.AsDiamond(f)
		if !ok {
			continue
		}
		if pred(E) {
			return true
		}
	}
	return false
}
