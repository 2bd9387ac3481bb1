package golden

import (
	"fmt"

	"github.com/cwbudde/algo-fir/dsp/conv"
	"github.com/cwbudde/algo-fir/dsp/filter/design/firwin"
	"github.com/cwbudde/algo-fir/dsp/filter/fir"
)

// DefaultCutoff is the high-pass cutoff of the reference design in Hz.
const DefaultCutoff = 2800.0

type genConfig struct {
	taps      int
	cutoff    float64
	fullScale int32
}

// GenerateOption configures Generate.
type GenerateOption func(*genConfig)

// WithTaps sets the designed tap count. High-pass designs need an odd
// count. Values < 1 are ignored.
func WithTaps(n int) GenerateOption {
	return func(c *genConfig) {
		if n >= 1 {
			c.taps = n
		}
	}
}

// WithCutoff sets the high-pass cutoff in Hz. Non-positive values are
// ignored.
func WithCutoff(hz float64) GenerateOption {
	return func(c *genConfig) {
		if hz > 0 {
			c.cutoff = hz
		}
	}
}

// WithFullScale sets the quantized coefficient peak. Non-positive values
// are ignored.
func WithFullScale(fs int32) GenerateOption {
	return func(c *genConfig) {
		if fs > 0 {
			c.fullScale = fs
		}
	}
}

// Generate designs a high-pass filter for sampleRate, quantizes it and
// records the floating-point reference output of filtering input.
func Generate(input []int32, sampleRate float64, opts ...GenerateOption) (*Fixture, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	cfg := genConfig{taps: fir.DefaultTaps, cutoff: DefaultCutoff, fullScale: firwin.DefaultFullScale}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	h, err := firwin.HighPass(cfg.taps, cfg.cutoff, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("golden: design: %w", err)
	}
	coeffs := firwin.Quantize(h, cfg.fullScale)

	ref, err := conv.LFilter(coeffs, input)
	if err != nil {
		return nil, fmt.Errorf("golden: reference: %w", err)
	}

	in := make([]int32, len(input))
	copy(in, input)
	return &Fixture{Input: in, Coeffs: coeffs, Golden: ref}, nil
}
