package fir

import "fmt"

// Taps is the coefficient store of a filter session. Its length is fixed at
// construction; Load replaces the whole vector at once.
type Taps struct {
	coeffs []int32
}

// NewTaps returns a zero-valued coefficient store of length n.
func NewTaps(n int) (*Taps, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, n)
	}
	return &Taps{coeffs: make([]int32, n)}, nil
}

// Load copies coeffs into the store. It fails without modifying the store
// if len(coeffs) differs from Len.
func (t *Taps) Load(coeffs []int32) error {
	if len(coeffs) != len(t.coeffs) {
		return fmt.Errorf("%w: got %d, want %d", ErrCoefficientLengthMismatch, len(coeffs), len(t.coeffs))
	}
	copy(t.coeffs, coeffs)
	return nil
}

// Tap returns coefficient i. Index 0 is applied to the newest sample.
func (t *Taps) Tap(i int) int32 {
	return t.coeffs[i]
}

// Len returns the tap count.
func (t *Taps) Len() int {
	return len(t.coeffs)
}

// Slice returns a copy of the coefficients.
func (t *Taps) Slice() []int32 {
	c := make([]int32, len(t.coeffs))
	copy(c, t.coeffs)
	return c
}
