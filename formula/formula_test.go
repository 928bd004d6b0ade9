package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/epistemic-tableau/agent"
	"github.com/rfielding/epistemic-tableau/formula"
)

func TestKeyStructuralEquality(t *testing.T) {
	p := formula.Atom("p")
	q := formula.Atom("q")

	assert.True(t, formula.Equal(p, formula.Atom("p")))
	assert.False(t, formula.Equal(p, q))

	and1 := formula.And(p, q)
	and2 := formula.And(q, p)
	assert.False(t, formula.Equal(and1, and2), "And is order-sensitive")
}

func TestCoalitionNormalizedInKey(t *testing.T) {
	ab := agent.New("a", "b")
	ba := agent.New("b", "a")
	d1 := formula.D(ab, formula.Atom("p"))
	d2 := formula.D(ba, formula.Atom("p"))
	assert.Equal(t, d1.Key(), d2.Key())
}

func TestSugarExpansion(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")

	or := formula.Or(p, q)
	want := formula.Not(formula.And(formula.Not(p), formula.Not(q)))
	assert.Equal(t, want.Key(), or.Key())

	impl := formula.Implies(p, q)
	wantImpl := formula.Not(formula.And(p, formula.Not(q)))
	assert.Equal(t, wantImpl.Key(), impl.Key())
}

func TestKaIsSingletonD(t *testing.T) {
	p := formula.Atom("p")
	ka := formula.Ka("a", p)
	direct := formula.D(agent.New("a"), p)
	assert.Equal(t, direct.Key(), ka.Key())
}

func TestPredicates(t *testing.T) {
	p := formula.Atom("p")
	ab := agent.New("a", "b")

	diamond := formula.Not(formula.D(ab, p))
	A, phi, ok := formula.AsDiamond(diamond)
	assert.True(t, ok)
	assert.True(t, A.Equal(ab))
	assert.True(t, formula.Equal(phi, p))
	assert.True(t, formula.IsDiamond(diamond))
	assert.False(t, formula.IsBox(diamond))

	box := formula.D(ab, p)
	assert.True(t, formula.IsBox(box))
	assert.False(t, formula.IsDiamond(box))

	eventuality := formula.Not(formula.C(ab, p))
	assert.True(t, formula.IsEventuality(eventuality))
	assert.False(t, formula.IsEventuality(box))
}

func TestDoubleNegationNotCollapsed(t *testing.T) {
	p := formula.Atom("p")
	nn := formula.Not(formula.Not(p))
	assert.NotEqual(t, p.Key(), nn.Key())
}
