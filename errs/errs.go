// Package errs defines the two error kinds the tableau core may ever raise.
// Both are programmer-error signals, not satisfiability outcomes, and are
// always surfaced as panics so the core fails fast rather than continuing
// on malformed state.
package errs

// InvariantViolation signals a malformed coalition, a structurally invalid
// formula, or a node whose stored key no longer matches its contents. These
// indicate a bug in the caller or in the engine itself.
type InvariantViolation struct {
	Msg string
}

func (e InvariantViolation) Error() string { return "invariant violation: " + e.Msg }

// InternalLimit signals that an optional, caller-configured cap on the
// combined number of states and prestates was exceeded. Off by default;
// see tableau.Options.MaxNodes.
type InternalLimit struct {
	Msg string
}

func (e InternalLimit) Error() string { return "internal limit exceeded: " + e.Msg }

// Fail panics with an InvariantViolation carrying msg. The sole entry point
// used throughout the core so every fail-fast site reads the same way.
func Fail(msg string) {
	panic(InvariantViolation{Msg: msg})
}

// FailLimit panics with an InternalLimit carrying msg. Used at the single
// site that enforces tableau.Options.MaxNodes, kept distinct from Fail so
// callers can tell a caller-configured cap from a genuine engine bug.
func FailLimit(msg string) {
	panic(InternalLimit{Msg: msg})
}
