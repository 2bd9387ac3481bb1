package conv

import (
	"errors"
	"math"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// Direct returns the causal convolution of signal with kernel:
//
//	y[n] = sum_{k=0}^{M-1} kernel[k] * signal[n-k],  n < len(signal)
//
// The result has length len(signal).
func Direct(signal, kernel []int32) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	dst := make([]float64, len(signal))
	DirectTo(dst, signal, kernel)
	return dst, nil
}

// DirectTo writes the causal convolution into dst. Only the first
// min(len(dst), len(signal)) outputs are produced.
func DirectTo(dst []float64, signal, kernel []int32) {
	n := min(len(dst), len(signal))
	for i := range n {
		var acc float64
		for k := 0; k < len(kernel) && k <= i; k++ {
			acc += float64(kernel[k]) * float64(signal[i-k])
		}
		dst[i] = acc
	}
}

// LFilter returns the reference output of an FIR filter with integer
// taps kernel applied to signal, narrowed with [Narrow]. An empty signal
// yields an empty result.
func LFilter(kernel, signal []int32) ([]int32, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if len(signal) == 0 {
		return []int32{}, nil
	}
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	y, err := oa.Process(signal)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(y))
	for i, v := range y {
		out[i] = Narrow(v)
	}
	return out, nil
}

// Narrow rounds v to the nearest integer and wraps it into int32 the way
// int32 arithmetic would. The exact convolution of integer data is an
// integer, so rounding only removes FFT noise. Non-finite values map to
// math.MinInt32.
func Narrow(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.MinInt32
	}
	t := math.Round(v)
	if t >= -(1<<63) && t < 1<<63 {
		return int32(int64(t))
	}
	return int32(int64(math.Mod(t, 1<<32)))
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
