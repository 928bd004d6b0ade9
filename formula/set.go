package formula

import "strings"

// Set is a finite set of formulas with O(1) membership by canonical key and
// a deterministic canonical set key. Iteration preserves insertion order;
// the set key is order-independent (sorted), so two sets built from the
// same members in different orders compare equal.
type Set struct {
	order []Formula
	byKey map[string]Formula
}

// NewSet builds a Set from the given formulas, in order, deduplicating by
// key (later duplicates are no-ops).
func NewSet(fs ...Formula) *Set {
	s := &Set{byKey: make(map[string]Formula, len(fs))}
	for _, f := range fs {
		s.Add(f)
	}
	return s
}

// Add inserts f if not already present (by key). Returns true iff f was
// newly added.
func (s *Set) Add(f Formula) bool {
	k := f.Key()
	if _, ok := s.byKey[k]; ok {
		return false
	}
	s.byKey[k] = f
	s.order = append(s.order, f)
	return true
}

// Contains reports whether a formula with f's key is in the set.
func (s *Set) Contains(f Formula) bool {
	_, ok := s.byKey[f.Key()]
	return ok
}

// ContainsKey reports whether a formula with this exact key is in the set.
func (s *Set) ContainsKey(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

// Len returns the number of distinct formulas in the set.
func (s *Set) Len() int { return len(s.order) }

// Formulas returns the members in insertion order. The caller must not
// mutate the returned slice.
func (s *Set) Formulas() []Formula { return s.order }

// Key returns the canonical set key: the lexicographically sorted
// concatenation of member keys.
func (s *Set) Key() string {
	if len(s.order) == 0 {
		return ""
	}
	keys := make([]string, len(s.order))
	for i, f := range s.order {
		keys[i] = f.Key()
	}
	return JoinKeys(keys)
}

// Clone returns an independent copy preserving insertion order.
func (s *Set) Clone() *Set {
	c := &Set{
		order: make([]Formula, len(s.order)),
		byKey: make(map[string]Formula, len(s.byKey)),
	}
	copy(c.order, s.order)
	for k, v := range s.byKey {
		c.byKey[k] = v
	}
	return c
}

// Union returns a new set containing every member of s followed by every
// new member of other (members already in s keep their original position).
func (s *Set) Union(other *Set) *Set {
	out := s.Clone()
	for _, f := range other.order {
		out.Add(f)
	}
	return out
}

// With returns a clone of s with fs added, in order. Convenience for the
// expansion engine's "Δ ∪ {components}" rewrites.
func (s *Set) With(fs ...Formula) *Set {
	out := s.Clone()
	for _, f := range fs {
		out.Add(f)
	}
	return out
}

// Subset reports whether every member of s is also a member of other.
func (s *Set) Subset(other *Set) bool {
	for _, f := range s.order {
		if !other.Contains(f) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other have the same canonical set key.
func (s *Set) Equal(other *Set) bool { return s.Key() == other.Key() }

func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range s.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Key())
	}
	sb.WriteByte('}')
	return sb.String()
}
