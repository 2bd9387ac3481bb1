package golden

import (
	"github.com/cwbudde/algo-fir/dsp/filter/fir"
)

type runConfig struct {
	tolerance int64
	taps      int
}

// RunOption configures Run.
type RunOption func(*runConfig)

// WithTolerance sets the accepted absolute difference. Negative values are
// ignored.
func WithTolerance(tol int64) RunOption {
	return func(c *runConfig) {
		if tol >= 0 {
			c.tolerance = tol
		}
	}
}

// WithFilterTaps sets the tap count the filter is built with. The fixture's
// coefficient count must match it. Values < 1 are ignored.
func WithFilterTaps(n int) RunOption {
	return func(c *runConfig) {
		if n >= 1 {
			c.taps = n
		}
	}
}

// Run filters fx.Input with fx.Coeffs on a fresh filter session and
// compares the output with fx.Golden. Errors are configuration failures
// such as a coefficient count mismatch; a failed comparison is reported
// through Result.
func Run(fx *Fixture, opts ...RunOption) (Result, error) {
	cfg := runConfig{tolerance: DefaultTolerance, taps: fir.DefaultTaps}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f, err := fir.New(fir.WithTaps(cfg.taps))
	if err != nil {
		return Result{}, err
	}
	if err := f.Load(fx.Coeffs); err != nil {
		return Result{}, err
	}
	out, err := f.ProcessStream(fx.Input)
	if err != nil {
		return Result{}, err
	}
	return Compare(out, fx.Golden, cfg.tolerance), nil
}
