package fir

// State is the lifecycle stage of a filter session.
type State int

const (
	// StateUninitialized means no coefficients have been loaded yet.
	StateUninitialized State = iota
	// StateCoefficientsLoaded means Load succeeded and no sample has been
	// processed since.
	StateCoefficientsLoaded
	// StateStreaming means at least one sample has been processed with the
	// current coefficients.
	StateStreaming
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCoefficientsLoaded:
		return "coefficients-loaded"
	case StateStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}
