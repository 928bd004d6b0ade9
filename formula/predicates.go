package formula

import "github.com/rfielding/epistemic-tableau/agent"

// AsDiamond reports whether f has shape ¬D_A φ, returning (A, φ, true) if
// so. A diamond formula demands a successor world/prestate in the model.
func AsDiamond(f Formula) (agent.Coalition, Formula, bool) {
	n, ok := f.(NotFormula)
	if !ok {
		return agent.Coalition{}, nil, false
	}
	d, ok := n.Sub.(DFormula)
	if !ok {
		return agent.Coalition{}, nil, false
	}
	return d.Coalition, d.Sub, true
}

// IsDiamond reports whether f has shape ¬D_A φ.
func IsDiamond(f Formula) bool {
	_, _, ok := AsDiamond(f)
	return ok
}

// AsBox reports whether f has shape D_A φ, returning (A, φ, true) if so.
func AsBox(f Formula) (agent.Coalition, Formula, bool) {
	d, ok := f.(DFormula)
	if !ok {
		return agent.Coalition{}, nil, false
	}
	return d.Coalition, d.Sub, true
}

// IsBox reports whether f has shape D_A φ.
func IsBox(f Formula) bool {
	_, _, ok := AsBox(f)
	return ok
}

// AsEventuality reports whether f has shape ¬C_A φ, returning (A, φ, true)
// if so. An eventuality demands a finite witness path in the model.
func AsEventuality(f Formula) (agent.Coalition, Formula, bool) {
	n, ok := f.(NotFormula)
	if !ok {
		return agent.Coalition{}, nil, false
	}
	c, ok := n.Sub.(CFormula)
	if !ok {
		return agent.Coalition{}, nil, false
	}
	return c.Coalition, c.Sub, true
}

// IsEventuality reports whether f has shape ¬C_A φ.
func IsEventuality(f Formula) bool {
	_, _, ok := AsEventuality(f)
	return ok
}
