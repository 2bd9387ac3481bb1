package firwin

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultFullScale is the largest quantized coefficient magnitude, the
// positive range of a 16-bit sample.
const DefaultFullScale int32 = 1<<15 - 1

// Errors returned by the design functions.
var (
	ErrInvalidTaps   = errors.New("firwin: tap count must be >= 1")
	ErrInvalidCutoff = errors.New("firwin: cutoff must be inside (0, sampleRate/2)")
	ErrEvenHighPass  = errors.New("firwin: high-pass requires an odd tap count")
)

type config struct {
	scale bool
}

// Option configures coefficient design.
type Option func(*config)

// WithoutScaling leaves the windowed sinc unnormalized.
func WithoutScaling() Option {
	return func(c *config) {
		c.scale = false
	}
}

// LowPass designs a low-pass filter with the given cutoff (Hz).
func LowPass(taps int, cutoffHz, sampleRate float64, opts ...Option) ([]float64, error) {
	fc, err := validate(taps, cutoffHz, sampleRate)
	if err != nil {
		return nil, err
	}
	h := design(taps, func(m float64) float64 { return fc * sinc(fc*m) }, 0, opts)
	return h, nil
}

// HighPass designs a high-pass filter with the given cutoff (Hz). A
// high-pass needs a non-zero gain at Nyquist, which an even-length
// symmetric filter cannot have.
func HighPass(taps int, cutoffHz, sampleRate float64, opts ...Option) ([]float64, error) {
	fc, err := validate(taps, cutoffHz, sampleRate)
	if err != nil {
		return nil, err
	}
	if taps%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEvenHighPass, taps)
	}
	h := design(taps, func(m float64) float64 { return sinc(m) - fc*sinc(fc*m) }, 1, opts)
	return h, nil
}

// Quantize scales coeffs so the largest magnitude maps to fullScale and
// truncates toward zero. An all-zero input quantizes to zeros.
func Quantize(coeffs []float64, fullScale int32) []int32 {
	out := make([]int32, len(coeffs))
	var peak float64
	for _, c := range coeffs {
		peak = math.Max(peak, math.Abs(c))
	}
	if peak == 0 {
		return out
	}
	for i, c := range coeffs {
		out[i] = int32(c / peak * float64(fullScale))
	}
	return out
}

// validate returns the cutoff normalized to Nyquist.
func validate(taps int, cutoffHz, sampleRate float64) (float64, error) {
	if taps < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTaps, taps)
	}
	nyq := sampleRate / 2
	if !(sampleRate > 0) || !(cutoffHz > 0) || cutoffHz >= nyq {
		return 0, fmt.Errorf("%w: cutoff %g Hz at %g Hz", ErrInvalidCutoff, cutoffHz, sampleRate)
	}
	return cutoffHz / nyq, nil
}

// design samples ideal at m = n - (taps-1)/2, applies the Hamming window
// and normalizes the response at scaleFreq (fraction of Nyquist) to one.
func design(taps int, ideal func(m float64) float64, scaleFreq float64, opts []Option) []float64 {
	cfg := config{scale: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	alpha := float64(taps-1) / 2
	h := make([]float64, taps)
	for n := range h {
		h[n] = ideal(float64(n) - alpha)
	}
	vecmath.MulBlockInPlace(h, hamming(taps))

	if cfg.scale {
		var s float64
		for n, v := range h {
			s += v * math.Cos(math.Pi*(float64(n)-alpha)*scaleFreq)
		}
		for n := range h {
			h[n] /= s
		}
	}
	return h
}

// hamming returns the symmetric Hamming window.
func hamming(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	m := float64(n - 1)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/m)
	}
	return w
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}
