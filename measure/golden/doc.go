// Package golden verifies the integer FIR runtime against golden output
// files.
//
// A [Fixture] holds three sample sequences, usually read from text files of
// whitespace-separated signed integers: the filter input, the coefficients
// and the expected (golden) output. [Run] filters the input with the
// coefficients and [Compare]s the result against the golden output with an
// absolute tolerance, stopping at the first mismatch. [Generate] builds a
// fixture from raw input the same way the reference pipeline does:
// Hamming-windowed high-pass design, 16-bit coefficient quantization and a
// floating-point FFT reference.
package golden
