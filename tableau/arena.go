package tableau

import "github.com/rfielding/epistemic-tableau/formula"

// arena owns node minting, the per-kind key→NodeId indices (no two
// distinct states/prestates within a run share a canonical set key), and
// the per-run monotonic id counter.
type arena struct {
	next          NodeId
	prestates     map[NodeId]*Node
	states        map[NodeId]*Node
	prestateByKey map[string]NodeId
	stateByKey    map[string]NodeId
}

func newArena() *arena {
	return &arena{
		prestates:     make(map[NodeId]*Node),
		states:        make(map[NodeId]*Node),
		prestateByKey: make(map[string]NodeId),
		stateByKey:    make(map[string]NodeId),
	}
}

// internPrestate returns the existing prestate with this key if any,
// otherwise mints a new one. The second return is true iff a new node was
// minted.
func (a *arena) internPrestate(fs *formula.Set) (*Node, bool) {
	key := fs.Key()
	if id, ok := a.prestateByKey[key]; ok {
		return a.prestates[id], false
	}
	id := a.mint()
	n := &Node{ID: id, Kind: KindPrestate, Formulas: fs}
	a.prestates[id] = n
	a.prestateByKey[key] = id
	return n, true
}

// internState returns the existing state with this key if any, otherwise
// mints a new one.
func (a *arena) internState(fs *formula.Set) (*Node, bool) {
	key := fs.Key()
	if id, ok := a.stateByKey[key]; ok {
		return a.states[id], false
	}
	id := a.mint()
	n := &Node{ID: id, Kind: KindState, Formulas: fs}
	a.states[id] = n
	a.stateByKey[key] = id
	return n, true
}

func (a *arena) mint() NodeId {
	id := a.next
	a.next++
	return id
}
