// Package firwin designs linear-phase FIR coefficients by the window method
// and quantizes them for the integer runtime in dsp/filter/fir.
//
// The ideal low-pass or high-pass impulse response is a difference of sinc
// terms centred on (taps-1)/2, multiplied by a symmetric Hamming window and
// normalized to unity gain at the centre of the pass band (DC for
// low-pass, Nyquist for high-pass).
package firwin
