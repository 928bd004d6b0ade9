package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/epistemic-tableau/agent"
	"github.com/rfielding/epistemic-tableau/expand"
	"github.com/rfielding/epistemic-tableau/formula"
)

func TestConstructSimpleAtomHasOneStateNoSolidEdges(t *testing.T) {
	a := newArena()
	p := formula.Atom("p")
	pt := construct(a, p, Options{RestrictedCuts: true}, nil)

	require.Len(t, pt.States, 1)
	for _, n := range pt.States {
		assert.True(t, n.Formulas.Contains(p))
	}
	assert.Empty(t, pt.SolidEdges)
	assert.Len(t, pt.DashedEdges, 1)
}

func TestConstructDiamondProducesSuccessorPrestate(t *testing.T) {
	a := newArena()
	ab := agent.New("a", "b")
	p := formula.Atom("p")
	root := formula.Not(formula.D(ab, p)) // ¬D_{a,b} p, a diamond
	pt := construct(a, root, Options{RestrictedCuts: true}, nil)

	require.NotEmpty(t, pt.SolidEdges)
	for _, e := range pt.SolidEdges {
		assert.Equal(t, root.Key(), e.Label.Key())
	}
	// The successor prestate must contain ¬p (negation of the diamond's sub).
	foundNegP := false
	for _, pre := range pt.Prestates {
		if pre.Formulas.Contains(formula.Not(p)) {
			foundNegP = true
		}
	}
	assert.True(t, foundNegP)
}

func TestSuccessorPrestateBoxReflexivityCarriesOver(t *testing.T) {
	ab := agent.New("a", "b")
	a := agent.New("a")
	p, q := formula.Atom("p"), formula.Atom("q")

	diam := formula.Not(formula.D(ab, q))
	delta := formula.NewSet(diam, formula.D(a, p)) // D_{a} p: A'={a} ⊆ A={a,b}, must carry over

	gamma := successorPrestate(delta, diam)
	assert.True(t, gamma.Contains(formula.Not(q)))
	assert.True(t, gamma.Contains(formula.D(a, p)))
}

func TestSuccessorPrestateExcludesWiderCoalitionBox(t *testing.T) {
	ab := agent.New("a", "b")
	abc := agent.New("a", "b", "c")
	p := formula.Atom("p")

	diam := formula.Not(formula.D(ab, p))
	delta := formula.NewSet(diam, formula.D(abc, p)) // A'={a,b,c} ⊄ A={a,b}
	gamma := successorPrestate(delta, diam)
	assert.False(t, gamma.Contains(formula.D(abc, p)))
}

func TestSuccessorPrestateExcludesTriggeringDiamondItself(t *testing.T) {
	ab := agent.New("a", "b")
	p := formula.Atom("p")
	diam := formula.Not(formula.D(ab, p))
	delta := formula.NewSet(diam)
	gamma := successorPrestate(delta, diam)
	assert.False(t, gamma.Contains(diam))
}

func TestConstructRespectsStats(t *testing.T) {
	a := newArena()
	agt := agent.Agent("a")
	p := formula.Atom("p")
	ka := formula.Ka(agt, p)
	root := formula.And(ka, formula.Not(ka)) // closes by patent inconsistency right after the α-rule, before any cut
	stats := &expand.Stats{}
	_ = construct(a, root, Options{RestrictedCuts: true}, stats)
	// Stats must not panic when queried even if zero.
	assert.GreaterOrEqual(t, stats.CutsApplied(), int64(0))
}
