package fir

// MAC returns the dot product of window and coeffs narrowed to int32:
//
//	sum_{k} coeffs[k] * window[k]
//
// Position k of window pairs with coefficient k. Only the common prefix of
// the two slices is used. The reduction has no data-dependent branches.
func MAC(window, coeffs []int32) int32 {
	return int32(mac(window, coeffs))
}

// mac accumulates in int64. int64 overflow wraps modulo 2^64, which keeps
// the low 32 bits exact.
func mac(window, coeffs []int32) int64 {
	n := min(len(window), len(coeffs))
	window, coeffs = window[:n], coeffs[:n]
	var acc int64
	for k, c := range coeffs {
		acc += int64(c) * int64(window[k])
	}
	return acc
}
