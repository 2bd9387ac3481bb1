package fir

import "fmt"

// Filter is one streaming FIR session with a fixed tap count.
type Filter struct {
	taps  *Taps
	reg   *ShiftRegister
	state State
}

// New creates an unconfigured filter. The tap count defaults to
// DefaultTaps and cannot change afterwards.
func New(opts ...Option) (*Filter, error) {
	cfg := applyOptions(opts)
	taps, err := NewTaps(cfg.taps)
	if err != nil {
		return nil, err
	}
	reg, err := NewShiftRegister(cfg.taps)
	if err != nil {
		return nil, err
	}
	return &Filter{taps: taps, reg: reg}, nil
}

// Load replaces the coefficients. On success the filter is ready for
// streaming; the delay line is left untouched. On failure neither the
// coefficients nor the state change.
func (f *Filter) Load(coeffs []int32) error {
	if err := f.taps.Load(coeffs); err != nil {
		return err
	}
	f.state = StateCoefficientsLoaded
	return nil
}

// Reset clears the delay line to zero. Coefficients and state are kept.
func (f *Filter) Reset() {
	f.reg.Reset()
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x int32) (int32, error) {
	if f.state == StateUninitialized {
		return 0, ErrNotConfigured
	}
	y := f.step(x)
	f.state = StateStreaming
	return y, nil
}

// ProcessStream filters src in order and returns a new slice of equal length.
func (f *Filter) ProcessStream(src []int32) ([]int32, error) {
	if f.state == StateUninitialized {
		return nil, ErrNotConfigured
	}
	dst := make([]int32, len(src))
	f.processTo(dst, src)
	return dst, nil
}

// ProcessStreamTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessStreamTo(dst, src []int32) error {
	if f.state == StateUninitialized {
		return ErrNotConfigured
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	f.processTo(dst, src)
	return nil
}

func (f *Filter) processTo(dst, src []int32) {
	if len(src) == 0 {
		return
	}
	for i, x := range src {
		dst[i] = f.step(x)
	}
	f.state = StateStreaming
}

// step pushes x and reduces the two ring segments against the matching
// coefficient ranges, so the window is never copied.
func (f *Filter) step(x int32) int32 {
	f.reg.Push(x)
	newer, older := f.reg.segments()
	c := f.taps.coeffs
	return int32(mac(newer, c[:len(newer)]) + mac(older, c[len(newer):]))
}

// State returns the lifecycle stage.
func (f *Filter) State() State {
	return f.state
}

// Taps returns the tap count.
func (f *Filter) Taps() int {
	return f.taps.Len()
}

// Coefficients returns a copy of the loaded coefficients.
func (f *Filter) Coefficients() []int32 {
	return f.taps.Slice()
}

// Window returns a newest-first copy of the delay line.
func (f *Filter) Window() []int32 {
	return f.reg.Window()
}

// Apply filters samples with coeffs from zero history. The tap count is
// len(coeffs). It is equivalent to Load, Reset and ProcessStream on a
// fresh filter.
func Apply(coeffs, samples []int32) ([]int32, error) {
	if len(coeffs) < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, len(coeffs))
	}
	f, err := New(WithTaps(len(coeffs)))
	if err != nil {
		return nil, err
	}
	if err := f.Load(coeffs); err != nil {
		return nil, err
	}
	return f.ProcessStream(samples)
}
