// Package formula implements the tagged-union formula data model of the
// epistemic logic: atoms, negation, conjunction, distributed knowledge
// (D_A) and common knowledge (C_A), plus macro-expanded sugar (Or,
// Implies, Ka) and a canonical string key giving structural equality up to
// coalition normalization.
package formula

import (
	"sort"
	"strings"

	"github.com/rfielding/epistemic-tableau/agent"
	"github.com/rfielding/epistemic-tableau/errs"
)

// Formula is the tagged union. Every concrete type below implements it.
// Visitor-style operations elsewhere in the module (classify, closure, key
// construction) are plain type switches over this interface; there is no
// dynamic dispatch beyond Key().
type Formula interface {
	// Key returns the canonical structural key of this formula.
	Key() string
	formulaNode()
}

// AtomFormula is an atomic proposition.
type AtomFormula struct {
	Name string
}

func (AtomFormula) formulaNode() {}

func (a AtomFormula) Key() string { return "p:" + a.Name }

// Atom constructs an atomic proposition. Panics if name is empty.
func Atom(name string) Formula {
	if name == "" {
		errs.Fail("formula.Atom: empty atom name")
	}
	return AtomFormula{Name: name}
}

// NotFormula is syntactic negation: ¬Sub. Never simplified at construction
// time. ¬¬φ is a distinct formula from φ, reduced only by the classifier's
// α-rule.
type NotFormula struct {
	Sub Formula
}

func (NotFormula) formulaNode() {}

func (n NotFormula) Key() string { return "¬(" + n.Sub.Key() + ")" }

// Not builds ¬sub by syntactic wrapping; it never looks inside sub.
func Not(sub Formula) Formula { return NotFormula{Sub: sub} }

// AndFormula is conjunction. Order-sensitive: And(p,q) ≠ And(q,p)
// structurally.
type AndFormula struct {
	Left, Right Formula
}

func (AndFormula) formulaNode() {}

func (a AndFormula) Key() string { return "∧(" + a.Left.Key() + "," + a.Right.Key() + ")" }

// And builds the conjunction left ∧ right.
func And(left, right Formula) Formula { return AndFormula{Left: left, Right: right} }

// DFormula is distributed knowledge: D_Coalition Sub.
type DFormula struct {
	Coalition agent.Coalition
	Sub       Formula
}

func (DFormula) formulaNode() {}

func (d DFormula) Key() string { return "D[" + d.Coalition.Key() + "](" + d.Sub.Key() + ")" }

// D builds D_coal sub.
func D(coal agent.Coalition, sub Formula) Formula { return DFormula{Coalition: coal, Sub: sub} }

// CFormula is common knowledge: C_Coalition Sub.
type CFormula struct {
	Coalition agent.Coalition
	Sub       Formula
}

func (CFormula) formulaNode() {}

func (c CFormula) Key() string { return "C[" + c.Coalition.Key() + "](" + c.Sub.Key() + ")" }

// C builds C_coal sub.
func C(coal agent.Coalition, sub Formula) Formula { return CFormula{Coalition: coal, Sub: sub} }

// ---- sugar, macro-expanded at construction time, never stored ----

// Or(p, q) ≡ ¬(¬p ∧ ¬q).
func Or(p, q Formula) Formula {
	return NotFormula{Sub: AndFormula{Left: NotFormula{Sub: p}, Right: NotFormula{Sub: q}}}
}

// Implies(p, q) ≡ ¬(p ∧ ¬q).
func Implies(p, q Formula) Formula {
	return NotFormula{Sub: AndFormula{Left: p, Right: NotFormula{Sub: q}}}
}

// Ka(a, phi) ≡ D_{a} phi: single-agent knowledge.
func Ka(a agent.Agent, phi Formula) Formula {
	return DFormula{Coalition: agent.New(a), Sub: phi}
}

// ---- structural helpers ----

// Equal reports whether two formulas have the same canonical key.
func Equal(a, b Formula) bool { return a.Key() == b.Key() }

// SortByKey returns a new slice of fs sorted by canonical key, for
// deterministic iteration where a stable order matters.
func SortByKey(fs []Formula) []Formula {
	out := make([]Formula, len(fs))
	copy(out, fs)
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// JoinKeys is a small helper used by Set.Key to build deterministic
// concatenated keys.
func JoinKeys(keys []string) string {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}
