package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/epistemic-tableau/agent"
	"github.com/rfielding/epistemic-tableau/classify"
	"github.com/rfielding/epistemic-tableau/formula"
)

func keys(fs []formula.Formula) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Key()
	}
	return out
}

func TestAtomElementary(t *testing.T) {
	c := classify.Classify(formula.Atom("p"))
	assert.Equal(t, classify.Elementary, c.Kind)
	assert.Empty(t, c.Components)
}

func TestNegatedAtomElementary(t *testing.T) {
	c := classify.Classify(formula.Not(formula.Atom("p")))
	assert.Equal(t, classify.Elementary, c.Kind)
}

func TestDoubleNegationAlpha(t *testing.T) {
	p := formula.Atom("p")
	c := classify.Classify(formula.Not(formula.Not(p)))
	assert.Equal(t, classify.Alpha, c.Kind)
	assert.Equal(t, []string{p.Key()}, keys(c.Components))
}

func TestAndAlpha(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	c := classify.Classify(formula.And(p, q))
	assert.Equal(t, classify.Alpha, c.Kind)
	assert.Equal(t, []string{p.Key(), q.Key()}, keys(c.Components))
}

func TestNegatedAndBeta(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	c := classify.Classify(formula.Not(formula.And(p, q)))
	assert.Equal(t, classify.Beta, c.Kind)
	assert.Equal(t, []string{formula.Not(p).Key(), formula.Not(q).Key()}, keys(c.Components))
}

func TestDAlpha(t *testing.T) {
	p := formula.Atom("p")
	ab := agent.New("a", "b")
	d := formula.D(ab, p)
	c := classify.Classify(d)
	assert.Equal(t, classify.Alpha, c.Kind)
	assert.Equal(t, []string{d.Key(), p.Key()}, keys(c.Components))
}

func TestDiamondElementary(t *testing.T) {
	p := formula.Atom("p")
	ab := agent.New("a", "b")
	c := classify.Classify(formula.Not(formula.D(ab, p)))
	assert.Equal(t, classify.Elementary, c.Kind)
}

func TestCAlphaComponentOrder(t *testing.T) {
	p := formula.Atom("p")
	abc := agent.New("c", "a", "b") // unsorted input, canonical order a,b,c
	cf := formula.C(abc, p)
	got := classify.Classify(cf)
	assert.Equal(t, classify.Alpha, got.Kind)

	wantKeys := []string{
		p.Key(),
		formula.D(agent.New("a"), cf).Key(),
		formula.D(agent.New("b"), cf).Key(),
		formula.D(agent.New("c"), cf).Key(),
	}
	assert.Equal(t, wantKeys, keys(got.Components))
}

func TestNegatedCBetaComponentOrder(t *testing.T) {
	p := formula.Atom("p")
	ab := agent.New("a", "b")
	cf := formula.C(ab, p)
	neg := formula.Not(cf)
	got := classify.Classify(neg)
	assert.Equal(t, classify.Beta, got.Kind)

	wantKeys := []string{
		formula.Not(p).Key(),
		formula.Not(formula.D(agent.New("a"), cf)).Key(),
		formula.Not(formula.D(agent.New("b"), cf)).Key(),
	}
	assert.Equal(t, wantKeys, keys(got.Components))
}
