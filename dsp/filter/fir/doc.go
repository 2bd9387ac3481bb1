// Package fir provides a fixed-order, integer direct-form FIR filter runtime.
//
// A [Filter] owns one filter session: a coefficient vector ([Taps]) loaded
// before streaming and a delay line ([ShiftRegister]) of the N most recent
// samples. Every processed sample costs exactly N multiply-accumulate steps
// ([MAC]) and produces one output sample, in input order:
//
//	y[n] = sum_{k=0}^{N-1} c[k] * x[n-k],  x[j] = 0 for j < 0
//
// Arithmetic is two's-complement int32 with wraparound. Products are
// accumulated in int64 and truncated to int32, which is bit-exact with
// plain int32 arithmetic for any tap count.
//
// A Filter is not safe for concurrent use. Independent sessions share no
// state and may run on separate goroutines.
//
// Coefficient design and quantization live in dsp/filter/design/firwin.
package fir
