// Package agent defines agents and coalitions, the ground terms that the
// D_A (distributed knowledge) and C_A (common knowledge) operators range
// over.
package agent

import (
	"sort"
	"strings"

	"github.com/rfielding/epistemic-tableau/errs"
)

// Agent is an opaque, equality-comparable, totally ordered identifier.
type Agent string

// Coalition is a non-empty set of agents, always held in canonical form:
// sorted ascending and deduplicated. Two coalitions are equal iff their
// canonical forms coincide, so plain struct/slice equality after
// normalization is sound.
type Coalition struct {
	agents []Agent // sorted, deduplicated; never empty
}

// New builds a Coalition from the given agents, normalizing them.
// Panics with InvariantViolation if agents is empty after deduplication.
func New(agents ...Agent) Coalition {
	c := Coalition{agents: normalize(agents)}
	if len(c.agents) == 0 {
		errs.Fail("agent.New: coalition must be non-empty")
	}
	return c
}

func normalize(agents []Agent) []Agent {
	if len(agents) == 0 {
		return nil
	}
	out := make([]Agent, len(agents))
	copy(out, agents)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	deduped := out[:1]
	for _, a := range out[1:] {
		if a != deduped[len(deduped)-1] {
			deduped = append(deduped, a)
		}
	}
	return deduped
}

// Agents returns the canonical (sorted, deduplicated) agent list. The
// returned slice must not be mutated by the caller.
func (c Coalition) Agents() []Agent { return c.agents }

// Len reports the number of distinct agents in the coalition.
func (c Coalition) Len() int { return len(c.agents) }

// Key returns a deterministic canonical string, e.g. "{a,b,c}".
func (c Coalition) Key() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, a := range c.agents {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(string(a))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (c Coalition) String() string { return c.Key() }

// Equal reports whether two coalitions have the same canonical form.
func (c Coalition) Equal(other Coalition) bool {
	return c.Key() == other.Key()
}

// Contains reports whether a is a member of the coalition.
func (c Coalition) Contains(a Agent) bool {
	i := sort.Search(len(c.agents), func(i int) bool { return c.agents[i] >= a })
	return i < len(c.agents) && c.agents[i] == a
}

// Subset reports whether every agent of c is also in other (c ⊆ other).
func (c Coalition) Subset(other Coalition) bool {
	for _, a := range c.agents {
		if !other.Contains(a) {
			return false
		}
	}
	return true
}

// Intersects reports whether c and other share at least one agent.
func (c Coalition) Intersects(other Coalition) bool {
	for _, a := range c.agents {
		if other.Contains(a) {
			return true
		}
	}
	return false
}

// Singleton reports whether the coalition contains exactly one agent, and
// returns it.
func (c Coalition) Singleton() (Agent, bool) {
	if len(c.agents) != 1 {
		return "", false
	}
	return c.agents[0], true
}
