package testutil

import "math/rand"

// DeterministicNoise generates uniform integers in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude int32, length int) []int32 {
	out := make([]int32, length)
	rng := rand.New(rand.NewSource(seed))
	span := int64(amplitude)*2 + 1
	for i := range out {
		out[i] = int32(rng.Int63n(span) - int64(amplitude))
	}
	return out
}

// Impulse generates a unit impulse of the given height at pos.
func Impulse(length, pos int, height int32) []int32 {
	out := make([]int32, length)
	if pos >= 0 && pos < length {
		out[pos] = height
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value int32, length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Zeros returns a zero signal of length n.
func Zeros(n int) []int32 {
	return make([]int32, n)
}

// Causal evaluates the causal convolution law term by term with native
// int32 wraparound arithmetic:
//
//	y[i] = sum_{k=0}^{N-1} c[k] * s[i-k],  s[j] = 0 for j < 0
//
// It is the test oracle for the streaming filter.
func Causal(coeffs, samples []int32) []int32 {
	out := make([]int32, len(samples))
	for i := range samples {
		var acc int32
		for k, c := range coeffs {
			if i-k < 0 {
				break
			}
			acc += c * samples[i-k]
		}
		out[i] = acc
	}
	return out
}
