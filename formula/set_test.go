package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/epistemic-tableau/formula"
)

func TestSetKeyOrderIndependent(t *testing.T) {
	p, q, r := formula.Atom("p"), formula.Atom("q"), formula.Atom("r")

	s1 := formula.NewSet(p, q, r)
	s2 := formula.NewSet(r, p, q)
	assert.Equal(t, s1.Key(), s2.Key())
}

func TestSetDeduplicates(t *testing.T) {
	p := formula.Atom("p")
	s := formula.NewSet(p, p, p)
	assert.Equal(t, 1, s.Len())
}

func TestSetIterationPreservesInsertionOrder(t *testing.T) {
	p, q, r := formula.Atom("p"), formula.Atom("q"), formula.Atom("r")
	s := formula.NewSet(r, p, q)
	got := s.Formulas()
	assert.Equal(t, []string{r.Key(), p.Key(), q.Key()}, []string{got[0].Key(), got[1].Key(), got[2].Key()})
}

func TestSetUnionAndWith(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	s1 := formula.NewSet(p)
	s2 := formula.NewSet(q)
	u := s1.Union(s2)
	assert.Equal(t, 2, u.Len())
	assert.True(t, u.Contains(p))
	assert.True(t, u.Contains(q))

	w := s1.With(q)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 1, s1.Len(), "With must not mutate the receiver")
}

func TestSetSubsetAndEqual(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	small := formula.NewSet(p)
	big := formula.NewSet(p, q)
	assert.True(t, small.Subset(big))
	assert.False(t, big.Subset(small))
	assert.False(t, small.Equal(big))
	assert.True(t, small.Equal(small.Clone()))
}

func TestSetCloneIndependent(t *testing.T) {
	p, q := formula.Atom("p"), formula.Atom("q")
	s := formula.NewSet(p)
	c := s.Clone()
	c.Add(q)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}
