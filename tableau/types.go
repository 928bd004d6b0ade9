// Package tableau implements the three-phase analytic tableau procedure:
// pretableau construction (rules SR/DR), prestate elimination (rule PR),
// and state elimination (rules E1/E2), culminating in the Decide entry
// point and Result aggregation.
//
// The NodeId arena-and-handle pattern below keeps nodes in maps owned by
// one driver, keyed by an opaque id minted from a per-run monotonic
// counter, never referenced directly. Phase 3 removal is O(1) and cycles
// in the state graph pose no lifetime issue.
package tableau

import "github.com/rfielding/epistemic-tableau/formula"

// NodeId is an opaque handle into a Pretableau's or Tableau's node maps.
// Unique only within a single Decide call.
type NodeId int

// NodeKind distinguishes prestates from states.
type NodeKind int

const (
	KindPrestate NodeKind = iota
	KindState
)

func (k NodeKind) String() string {
	if k == KindPrestate {
		return "prestate"
	}
	return "state"
}

// Node is a frozen formula set minted once during Phase 1 and never
// mutated afterward; only its presence in the owning map can change
// (removal during Phase 3).
type Node struct {
	ID       NodeId
	Kind     NodeKind
	Formulas *formula.Set
}

// DashedEdge is a prestate→state search edge carrying no label.
type DashedEdge struct {
	From, To NodeId
}

// SolidEdge is a state→prestate edge in the pretableau, or a state→state
// edge after prestate elimination. Label is always of shape ¬D_A φ.
type SolidEdge struct {
	From, To NodeId
	Label    formula.Formula
}

// Pretableau is the bipartite graph produced by Phase 1.
type Pretableau struct {
	Prestates   map[NodeId]*Node
	States      map[NodeId]*Node
	DashedEdges []DashedEdge
	SolidEdges  []SolidEdge
}

// Tableau is a state-only graph: the initial tableau (post-Phase 2) or the
// final tableau (post-Phase 3).
type Tableau struct {
	States map[NodeId]*Node
	Edges  []SolidEdge
}

// EliminationRule names which Phase 3 rule removed a state.
type EliminationRule int

const (
	RuleE1 EliminationRule = iota
	RuleE2
)

func (r EliminationRule) String() string {
	if r == RuleE1 {
		return "E1"
	}
	return "E2"
}

// EliminationRecord is a diagnostic entry recorded whenever Phase 3 removes
// a state: which rule fired, on what formula, and a frozen snapshot of the
// state's formulas at the moment of removal.
type EliminationRecord struct {
	StateID  NodeId
	Rule     EliminationRule
	Formula  formula.Formula
	Snapshot *formula.Set
}
