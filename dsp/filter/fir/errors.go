package fir

import "errors"

// Errors returned by the filter runtime.
var (
	ErrInvalidTaps               = errors.New("fir: tap count must be >= 1")
	ErrCoefficientLengthMismatch = errors.New("fir: coefficient count does not match tap count")
	ErrNotConfigured             = errors.New("fir: coefficients not loaded")
	ErrLengthMismatch            = errors.New("fir: buffer length mismatch")
)
