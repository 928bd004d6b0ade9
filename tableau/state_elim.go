package tableau

import (
	"sort"

	"github.com/rfielding/epistemic-tableau/formula"
)

// workingTableau is Phase 3's mutable copy of the initial tableau. States
// are removed by key deletion (the arena-and-handle pattern makes this
// O(1) and leaves no dangling references); edges referencing a removed
// endpoint are pruned alongside it.
type workingTableau struct {
	states map[NodeId]*Node
	edges  []SolidEdge
	trace  []EliminationRecord
}

func newWorkingTableau(t *Tableau) *workingTableau {
	states := make(map[NodeId]*Node, len(t.States))
	for id, n := range t.States {
		states[id] = n
	}
	edges := make([]SolidEdge, len(t.Edges))
	copy(edges, t.Edges)
	return &workingTableau{states: states, edges: edges}
}

func (w *workingTableau) edgesFrom(id NodeId) []SolidEdge {
	var out []SolidEdge
	for _, e := range w.edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

func (w *workingTableau) remove(id NodeId, rule EliminationRule, f formula.Formula) {
	n, ok := w.states[id]
	if !ok {
		return
	}
	w.trace = append(w.trace, EliminationRecord{
		StateID:  id,
		Rule:     rule,
		Formula:  f,
		Snapshot: n.Formulas.Clone(),
	})
	delete(w.states, id)
	kept := w.edges[:0]
	for _, e := range w.edges {
		if e.From == id || e.To == id {
			continue
		}
		kept = append(kept, e)
	}
	w.edges = kept
}

// eliminateE1 removes every state with a diamond formula that has no
// surviving solid-edge successor, to fixpoint.
func (w *workingTableau) eliminateE1() bool {
	removedAny := false
	for {
		removed := false
		for id, n := range w.states {
			for _, f := range n.Formulas.Formulas() {
				if !formula.IsDiamond(f) {
					continue
				}
				if w.hasSurvivingSuccessor(id, f) {
					continue
				}
				w.remove(id, RuleE1, f)
				removed = true
				removedAny = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return removedAny
}

func (w *workingTableau) hasSurvivingSuccessor(id NodeId, diam formula.Formula) bool {
	for _, e := range w.edges {
		if e.From != id {
			continue
		}
		if e.Label.Key() != diam.Key() {
			continue
		}
		if _, ok := w.states[e.To]; ok {
			return true
		}
	}
	return false
}

// eliminateE2 realizes eventuality ζ = ¬C_A φ: marks every state that
// contains ¬φ, then, to fixpoint, every state containing ζ that has a
// solid edge to a marked state whose diamond label ¬D_B ψ has B ∩ A ≠ ∅,
// then removes every unmarked state that still contains ζ. Returns true
// iff any state was removed.
func (w *workingTableau) eliminateE2(zeta formula.Formula) bool {
	A, phi, ok := formula.AsEventuality(zeta)
	if !ok {
		return false
	}
	negPhi := formula.Not(phi)

	marked := make(map[NodeId]bool)
	for id, n := range w.states {
		if n.Formulas.Contains(negPhi) {
			marked[id] = true
		}
	}

	for {
		changed := false
		for id, n := range w.states {
			if marked[id] || !n.Formulas.Contains(zeta) {
				continue
			}
			for _, e := range w.edges {
				if e.From != id || !marked[e.To] {
					continue
				}
				b, _, ok := formula.AsDiamond(e.Label)
				if !ok || !b.Intersects(A) {
					continue
				}
				marked[id] = true
				changed = true
				break
			}
		}
		if !changed {
			break
		}
	}

	removedAny := false
	for id, n := range w.states {
		if marked[id] || !n.Formulas.Contains(zeta) {
			continue
		}
		w.remove(id, RuleE2, zeta)
		removedAny = true
	}
	return removedAny
}

// eventualitiesIn collects the distinct eventuality formulas appearing in
// any of w's current states, in canonical-key order.
func (w *workingTableau) eventualitiesIn() []formula.Formula {
	seen := make(map[string]formula.Formula)
	for _, n := range w.states {
		for _, f := range n.Formulas.Formulas() {
			if formula.IsEventuality(f) {
				seen[f.Key()] = f
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]formula.Formula, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}

// eliminateStates runs Phase 3: dovetailed cycles of E2 (per eventuality,
// in canonical-key order) followed by E1 to fixpoint, repeated until a
// full pass removes nothing. The returned round count is the number of
// full dovetailed passes executed, for RunMetrics.
func eliminateStates(t *Tableau) (*Tableau, []EliminationRecord, int) {
	w := newWorkingTableau(t)
	w.eliminateE1()
	rounds := 0
	for {
		rounds++
		passRemoved := false
		for _, zeta := range w.eventualitiesIn() {
			if w.eliminateE2(zeta) {
				passRemoved = true
			}
			if w.eliminateE1() {
				passRemoved = true
			}
		}
		if !passRemoved {
			break
		}
	}
	return &Tableau{States: w.states, Edges: w.edges}, w.trace, rounds
}
