// Package classify implements the α/β/elementary classification table for
// formulas. Every classification is a pure function of formula shape; there
// is no dynamic dispatch, only a type switch over the formula's shape.
package classify

import (
	"github.com/rfielding/epistemic-tableau/agent"
	"github.com/rfielding/epistemic-tableau/formula"
)

// Kind is the classification of a formula.
type Kind int

const (
	// Elementary formulas have no components: atoms, negated atoms,
	// diamonds (¬D_A φ).
	Elementary Kind = iota
	// Alpha (conjunctive) formulas require all of their components.
	Alpha
	// Beta (disjunctive) formulas require at least one component.
	Beta
)

func (k Kind) String() string {
	switch k {
	case Elementary:
		return "elementary"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying one formula: its Kind and,
// for Alpha/Beta, its Components in a fixed, deterministic order.
type Classification struct {
	Kind       Kind
	Components []formula.Formula
}

// Classify dispatches a formula to its α/β/elementary classification.
func Classify(f formula.Formula) Classification {
	switch v := f.(type) {
	case formula.AtomFormula:
		return Classification{Kind: Elementary}

	case formula.NotFormula:
		return classifyNot(v)

	case formula.AndFormula:
		// φ ∧ ψ is α with components φ, ψ.
		return Classification{Kind: Alpha, Components: []formula.Formula{v.Left, v.Right}}

	case formula.DFormula:
		// D_A φ is α; reflexivity means the box itself and its sub both
		// belong in any fully expanded set containing it.
		return Classification{Kind: Alpha, Components: []formula.Formula{v, v.Sub}}

	case formula.CFormula:
		// C_A φ is α: φ, then D_a C_A φ for each a ∈ A in canonical order.
		comps := make([]formula.Formula, 0, 1+v.Coalition.Len())
		comps = append(comps, v.Sub)
		for _, a := range v.Coalition.Agents() {
			comps = append(comps, formula.D(agent.New(a), v))
		}
		return Classification{Kind: Alpha, Components: comps}

	default:
		return Classification{Kind: Elementary}
	}
}

func classifyNot(n formula.NotFormula) Classification {
	switch inner := n.Sub.(type) {
	case formula.AtomFormula:
		// ¬p is elementary.
		return Classification{Kind: Elementary}

	case formula.NotFormula:
		// ¬¬φ is α with component φ.
		return Classification{Kind: Alpha, Components: []formula.Formula{inner.Sub}}

	case formula.AndFormula:
		// ¬(φ ∧ ψ) is β with components ¬φ, ¬ψ.
		return Classification{
			Kind: Beta,
			Components: []formula.Formula{
				formula.Not(inner.Left),
				formula.Not(inner.Right),
			},
		}

	case formula.DFormula:
		// ¬D_A φ (a diamond) is elementary.
		return Classification{Kind: Elementary}

	case formula.CFormula:
		// ¬C_A φ (an eventuality) is β with components ¬φ, then
		// ¬D_a C_A φ for each a ∈ A in canonical order.
		comps := make([]formula.Formula, 0, 1+inner.Coalition.Len())
		comps = append(comps, formula.Not(inner.Sub))
		for _, a := range inner.Coalition.Agents() {
			comps = append(comps, formula.Not(formula.D(agent.New(a), inner)))
		}
		return Classification{Kind: Beta, Components: comps}

	default:
		return Classification{Kind: Elementary}
	}
}

// IsElementary, IsAlpha, IsBeta are small conveniences used throughout
// expand/tableau.
func IsElementary(f formula.Formula) bool { return Classify(f).Kind == Elementary }
func IsAlpha(f formula.Formula) bool      { return Classify(f).Kind == Alpha }
func IsBeta(f formula.Formula) bool       { return Classify(f).Kind == Beta }
