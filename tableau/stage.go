package tableau

// Stage tags one of the four phases a Decide run passes through, reported
// via Options.OnProgress. The callback must not throw; it is always
// invoked synchronously on the caller's goroutine.
type Stage string

const (
	StageConstruction Stage = "construction"
	StagePrestateElim Stage = "prestate-elim"
	StageStateElim    Stage = "state-elim"
	StageVerdict      Stage = "verdict"
)

// Options configures one Decide run.
type Options struct {
	// RestrictedCuts selects the coalition-restricted cut side-conditions
	// over unrestricted analytic cuts. Callers must set this explicitly to
	// get restricted cuts; the zero value runs unrestricted.
	RestrictedCuts bool

	// OnProgress, if set, is invoked once per Stage in order.
	OnProgress func(stage Stage)

	// MaxNodes, if non-zero, caps the combined number of prestates and
	// states minted in one run; exceeding it panics with
	// errs.InternalLimit. Zero means unbounded (the default).
	MaxNodes int
}

func (o Options) notify(stage Stage) {
	if o.OnProgress != nil {
		o.OnProgress(stage)
	}
}
