package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfielding/epistemic-tableau/formula"
)

func TestArenaInternReusesByKey(t *testing.T) {
	a := newArena()
	p := formula.Atom("p")

	n1, new1 := a.internState(formula.NewSet(p))
	n2, new2 := a.internState(formula.NewSet(p))

	assert.True(t, new1)
	assert.False(t, new2)
	assert.Equal(t, n1.ID, n2.ID)
	assert.Len(t, a.states, 1)
}

func TestArenaInternDistinguishesPrestatesAndStates(t *testing.T) {
	a := newArena()
	p := formula.Atom("p")

	s, _ := a.internState(formula.NewSet(p))
	pr, _ := a.internPrestate(formula.NewSet(p))

	assert.NotEqual(t, s.ID, pr.ID)
	assert.Len(t, a.states, 1)
	assert.Len(t, a.prestates, 1)
}

func TestArenaMintIsMonotonic(t *testing.T) {
	a := newArena()
	p, q := formula.Atom("p"), formula.Atom("q")

	n1, _ := a.internState(formula.NewSet(p))
	n2, _ := a.internState(formula.NewSet(q))
	assert.Less(t, int(n1.ID), int(n2.ID))
}
