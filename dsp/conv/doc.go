// Package conv provides floating-point reference convolution over integer
// sample data.
//
// The routines here are independent of the integer runtime in
// dsp/filter/fir and serve as its oracle: they produce the causal part of
// the linear convolution (the first len(signal) outputs, as a direct-form
// filter with zero initial state would) in float64.
//
//   - [Direct]: O(N*L) time-domain convolution
//   - [OverlapAdd]: FFT-based block convolution for long signals
//   - [LFilter]: overlap-add reference narrowed to int32 the way a golden
//     output file is produced
//
// Float64 carries 53 bits of mantissa; sums of many 16-bit by 32-bit
// products can exceed it, so reference outputs may differ from the exact
// integer result by a few units.
package conv
