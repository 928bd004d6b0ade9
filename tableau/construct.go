package tableau

import (
	"github.com/rfielding/epistemic-tableau/errs"
	"github.com/rfielding/epistemic-tableau/expand"
	"github.com/rfielding/epistemic-tableau/formula"
)

// drPair is a pending (state, diamond-formula) obligation for rule DR.
type drPair struct {
	state NodeId
	diam  formula.Formula // ¬D_A φ
}

// construct runs Phase 1 of the graph procedure: seeds a single prestate
// {θ} and alternates rule SR (prestate → states, via cut-saturated
// expansion) and rule DR (state → prestate, one successor prestate per
// diamond formula) until both queues drain.
func construct(a *arena, root formula.Formula, opts Options, stats *expand.Stats) *Pretableau {
	expandOpts := expand.Options{EnableCuts: true, RestrictedCuts: opts.RestrictedCuts, Stats: stats}

	srQueue := []NodeId{}
	drQueue := []drPair{}
	drSeen := make(map[NodeId]map[string]bool) // state -> diamond key -> processed

	seed, _ := a.internPrestate(formula.NewSet(root))
	srQueue = append(srQueue, seed.ID)

	var dashed []DashedEdge
	var solid []SolidEdge

	enqueueDiamonds := func(state *Node) {
		for _, f := range state.Formulas.Formulas() {
			if !formula.IsDiamond(f) {
				continue
			}
			if drSeen[state.ID] == nil {
				drSeen[state.ID] = make(map[string]bool)
			}
			if drSeen[state.ID][f.Key()] {
				continue
			}
			drQueue = append(drQueue, drPair{state: state.ID, diam: f})
		}
	}

	for len(srQueue) > 0 || len(drQueue) > 0 {
		for len(srQueue) > 0 {
			pid := srQueue[0]
			srQueue = srQueue[1:]
			prestate := a.prestates[pid]

			family := expand.Expand(prestate.Formulas, expandOpts)
			for _, delta := range family {
				state, isNew := a.internState(delta)
				checkLimit(a, opts)
				dashed = append(dashed, DashedEdge{From: pid, To: state.ID})
				if isNew {
					enqueueDiamonds(state)
				}
			}
		}

		if len(drQueue) > 0 {
			pair := drQueue[0]
			drQueue = drQueue[1:]
			state := a.states[pair.state]
			if drSeen[state.ID] == nil {
				drSeen[state.ID] = make(map[string]bool)
			}
			if drSeen[state.ID][pair.diam.Key()] {
				continue
			}
			drSeen[state.ID][pair.diam.Key()] = true

			gamma := successorPrestate(state.Formulas, pair.diam)
			prestate, isNew := a.internPrestate(gamma)
			checkLimit(a, opts)
			solid = append(solid, SolidEdge{From: state.ID, To: prestate.ID, Label: pair.diam})
			if isNew {
				srQueue = append(srQueue, prestate.ID)
			}
		}
	}

	return &Pretableau{
		Prestates:   a.prestates,
		States:      a.states,
		DashedEdges: dashed,
		SolidEdges:  solid,
	}
}

// successorPrestate builds the rule-DR successor prestate for diamond
// formula diam = ¬D_A φ in state delta:
//
//	Γ = {¬φ}
//	  ∪ { D_A′ ψ ∈ Δ : A′ ⊆ A }
//	  ∪ { ¬D_A′ ψ ∈ Δ : A′ ⊆ A ∧ ¬D_A′ ψ ≠ χ }
//	  ∪ { ¬C_A′ ψ ∈ Δ : A′ ∩ A ≠ ∅ }
func successorPrestate(delta *formula.Set, diam formula.Formula) *formula.Set {
	A, phi, ok := formula.AsDiamond(diam)
	if !ok {
		errs.Fail("successorPrestate: label is not a diamond formula")
	}

	gamma := formula.NewSet(formula.Not(phi))
	for _, f := range delta.Formulas() {
		if box, sub, ok := formula.AsBox(f); ok {
			if box.Subset(A) {
				gamma.Add(formula.D(box, sub))
			}
			continue
		}
		if dcoal, sub, ok := formula.AsDiamond(f); ok {
			if dcoal.Subset(A) && f.Key() != diam.Key() {
				gamma.Add(formula.Not(formula.D(dcoal, sub)))
			}
			continue
		}
		if ecoal, sub, ok := formula.AsEventuality(f); ok {
			if ecoal.Intersects(A) {
				gamma.Add(formula.Not(formula.C(ecoal, sub)))
			}
			continue
		}
	}
	return gamma
}

func checkLimit(a *arena, opts Options) {
	if opts.MaxNodes == 0 {
		return
	}
	if len(a.prestates)+len(a.states) > opts.MaxNodes {
		errs.FailLimit("tableau: MaxNodes exceeded")
	}
}
