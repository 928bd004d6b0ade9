// Package expand implements the expansion engine: a fixpoint saturation of
// a formula set into a family of fully expanded, non-patently-inconsistent
// descendant sets, with an optional analytic cut rule restricted by
// coalition side-conditions.
//
// The fixpoint loop is a simple "repeat until nothing applies" pass over a
// growing set, generalized to branch (β-rule, cuts) instead of only
// accumulate.
package expand

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rfielding/epistemic-tableau/classify"
	"github.com/rfielding/epistemic-tableau/closure"
	"github.com/rfielding/epistemic-tableau/formula"
)

// Options configures one expansion run.
type Options struct {
	EnableCuts     bool
	RestrictedCuts bool

	// Stats, if non-nil, accumulates cut and rule-3 counters for this run.
	// Purely observational; nil is the zero-overhead default.
	Stats *Stats
}

// Expand saturates seed into the family 𝓕 of fully expanded,
// non-patently-inconsistent sets equivalent to seed. Returns nil if seed
// itself is patently inconsistent.
func Expand(seed *formula.Set, opts Options) []*formula.Set {
	if closure.IsPatentlyInconsistent(seed) {
		return nil
	}
	ctx := &engine{opts: opts, provenance: eventualityProvenance(seed)}
	return dedupeSorted(ctx.process(seed))
}

type engine struct {
	opts       Options
	provenance map[string]bool // formula keys reachable from an eventuality in the original seed
}

// eventualityProvenance marks every formula reachable by decomposing an
// eventuality (¬C_A φ) present in the original seed, so that the α-rule can
// prioritize expanding them first. This affects only the order rules fire
// in, never which sets end up in the final family.
func eventualityProvenance(seed *formula.Set) map[string]bool {
	marked := make(map[string]bool)
	for _, f := range seed.Formulas() {
		_, psi, ok := formula.AsEventuality(f)
		if !ok {
			continue
		}
		for _, c := range classify.Classify(f).Components {
			marked[c.Key()] = true
		}
		for _, s := range closure.Subformulas(psi).Formulas() {
			marked[s.Key()] = true
		}
	}
	return marked
}

// prioritized returns delta's formulas with provenance-marked ones first,
// each group in insertion order.
func (e *engine) prioritized(delta *formula.Set) []formula.Formula {
	all := delta.Formulas()
	prio := make([]formula.Formula, 0, len(all))
	rest := make([]formula.Formula, 0, len(all))
	for _, f := range all {
		if e.provenance[f.Key()] {
			prio = append(prio, f)
		} else {
			rest = append(rest, f)
		}
	}
	return append(prio, rest...)
}

// process runs rules 1-4 on delta, in priority order, until none applies,
// returning every terminal (fully expanded, consistent) descendant set.
func (e *engine) process(delta *formula.Set) []*formula.Set {
	if closure.IsPatentlyInconsistent(delta) {
		return nil
	}

	if comps, ok := e.findAlpha(delta); ok {
		return e.process(delta.With(comps...))
	}

	if comps, ok := e.findBeta(delta); ok {
		branches := make([]*formula.Set, len(comps))
		for i, c := range comps {
			branches[i] = delta.With(c)
		}
		return e.processBranches(branches)
	}

	siblings := e.applyRule3(delta)
	siblingResults := e.processBranches(siblings)

	if e.opts.EnableCuts {
		if chi, ok := e.findCut(delta); ok {
			e.opts.Stats.addCut()
			cutBranches := e.processBranches([]*formula.Set{
				delta.With(chi),
				delta.With(formula.Not(chi)),
			})
			return append(siblingResults, cutBranches...)
		}
	}

	return append(siblingResults, delta)
}

// findAlpha returns the components of the first α-formula in delta (in
// priority order) not already fully present, or ok=false if every α-formula
// is already saturated.
func (e *engine) findAlpha(delta *formula.Set) ([]formula.Formula, bool) {
	for _, f := range e.prioritized(delta) {
		cls := classify.Classify(f)
		if cls.Kind != classify.Alpha {
			continue
		}
		missing := false
		for _, c := range cls.Components {
			if !delta.Contains(c) {
				missing = true
				break
			}
		}
		if missing {
			return cls.Components, true
		}
	}
	return nil, false
}

// findBeta returns the components of the first β-formula in delta (in
// priority order) none of whose components are present yet.
func (e *engine) findBeta(delta *formula.Set) ([]formula.Formula, bool) {
	for _, f := range e.prioritized(delta) {
		cls := classify.Classify(f)
		if cls.Kind != classify.Beta {
			continue
		}
		anyPresent := false
		for _, c := range cls.Components {
			if delta.Contains(c) {
				anyPresent = true
				break
			}
		}
		if !anyPresent {
			return cls.Components, true
		}
	}
	return nil, false
}

// applyRule3 implements the special ¬C rule: for every ¬C_A ψ ∈ delta, if
// ¬ψ is absent but some other β-component of ¬C_A ψ is present, produce
// delta ∪ {¬ψ} as a new sibling set (delta itself is never mutated by this
// rule). Runs once each time process reaches delta; there is no memo table
// keyed by (set-key, formula-key), so a set reached along two branches runs
// it again. Every sibling already contains ¬ψ, so the rule does not fire
// again for that ψ further down the same branch.
func (e *engine) applyRule3(delta *formula.Set) []*formula.Set {
	var siblings []*formula.Set
	for _, f := range delta.Formulas() {
		if !formula.IsEventuality(f) {
			continue
		}
		cls := classify.Classify(f) // [¬ψ, ¬D_a C_A ψ, ...]
		negPsi := cls.Components[0]
		if delta.Contains(negPsi) {
			continue
		}
		otherPresent := false
		for _, c := range cls.Components[1:] {
			if delta.Contains(c) {
				otherPresent = true
				break
			}
		}
		if otherPresent {
			e.opts.Stats.addRule3()
			siblings = append(siblings, delta.With(negPsi))
		}
	}
	return siblings
}

// findCut searches for an eligible (ψ, χ) cut candidate: ψ ∈ delta, χ a
// subformula of ψ of shape D_A φ or C_A φ with neither χ nor ¬χ in delta,
// passing the restricted-cut side-condition when enabled.
func (e *engine) findCut(delta *formula.Set) (formula.Formula, bool) {
	for _, psi := range delta.Formulas() {
		for _, chi := range closure.Subformulas(psi).Formulas() {
			switch chi.(type) {
			case formula.DFormula, formula.CFormula:
			default:
				continue
			}
			if delta.Contains(chi) || delta.Contains(formula.Not(chi)) {
				continue
			}
			if e.opts.RestrictedCuts && !sideConditionHolds(delta, chi, psi) {
				continue
			}
			return chi, true
		}
	}
	return nil, false
}

// processBranches expands each branch independently. Sibling branches have
// no data dependency on one another, so they fan out over an errgroup and
// are merged deterministically by the caller via dedupeSorted.
func (e *engine) processBranches(branches []*formula.Set) []*formula.Set {
	if len(branches) == 0 {
		return nil
	}
	results := make([][]*formula.Set, len(branches))
	if len(branches) == 1 {
		results[0] = e.process(branches[0])
	} else {
		var g errgroup.Group
		for i, b := range branches {
			i, b := i, b
			g.Go(func() error {
				results[i] = e.process(b)
				return nil
			})
		}
		_ = g.Wait() // process never returns an error
	}
	var out []*formula.Set
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// dedupeSorted removes duplicate sets by canonical key and sorts the
// family by key, giving a deterministic, reproducible output regardless of
// how much branch processing ran concurrently.
func dedupeSorted(sets []*formula.Set) []*formula.Set {
	seen := make(map[string]*formula.Set, len(sets))
	keys := make([]string, 0, len(sets))
	for _, s := range sets {
		if s == nil {
			continue
		}
		k := s.Key()
		if _, ok := seen[k]; !ok {
			seen[k] = s
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]*formula.Set, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}
