package fir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^{-jw}) of the loaded
// coefficients at the given frequency (Hz) and sample rate (Hz). The gain
// is in raw coefficient units, not normalized to the quantization scale.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.taps.coeffs {
		h += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// RelativeDB returns the gain at freqHz relative to the gain at refHz in
// dB. The quantization scale of the coefficients cancels out, so a
// quantized design can be checked against its pass band directly.
func (f *Filter) RelativeDB(freqHz, refHz, sampleRate float64) float64 {
	return f.MagnitudeDB(freqHz, sampleRate) - f.MagnitudeDB(refHz, sampleRate)
}
