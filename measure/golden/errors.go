package golden

import "errors"

// Errors returned by the harness.
var (
	ErrMissingInputResource = errors.New("golden: input resource unavailable")
	ErrMalformedSample      = errors.New("golden: malformed sample")
	ErrEmptyInput           = errors.New("golden: empty input")
)
