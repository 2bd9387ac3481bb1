package golden

import (
	"fmt"
	"io"
)

// DefaultTolerance is the largest accepted absolute difference between an
// output sample and its golden value.
const DefaultTolerance int64 = 2

// Result is the outcome of a comparison.
type Result struct {
	Pass bool
	// Compared is the number of samples checked, including the mismatch.
	Compared int
	// MaxDiff is the largest absolute difference seen within tolerance.
	MaxDiff int64

	// Index, Actual and Expected describe the first mismatch when Pass is
	// false. Missing reports that Expected had no sample at Index.
	Index    int
	Actual   int32
	Expected int32
	Missing  bool
}

// Compare checks actual against expected element by element and stops at
// the first sample whose absolute difference exceeds tolerance. It only
// walks len(actual) samples; surplus expected samples are ignored.
func Compare(actual, expected []int32, tolerance int64) Result {
	res := Result{Pass: true}
	for i, a := range actual {
		res.Compared = i + 1
		if i >= len(expected) {
			res.Pass, res.Index, res.Actual, res.Missing = false, i, a, true
			return res
		}
		d := int64(a) - int64(expected[i])
		if d < 0 {
			d = -d
		}
		if d > tolerance {
			res.Pass, res.Index, res.Actual, res.Expected = false, i, a, expected[i]
			return res
		}
		res.MaxDiff = max(res.MaxDiff, d)
	}
	return res
}

// Report writes a human-readable verdict.
func (r Result) Report(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	if !r.Pass {
		if r.Missing {
			printf("FAIL at index %d: actual %d, expected value missing\n", r.Index, r.Actual)
		} else {
			printf("FAIL at index %d: actual %d, expected %d\n", r.Index, r.Actual, r.Expected)
		}
	}
	verdict := "PASS"
	if !r.Pass {
		verdict = "FAIL"
	}
	printf("***************************\n")
	printf("*    test %s          *\n", verdict)
	printf("***************************\n")
	printf("samples compared: %d, max deviation: %d\n", r.Compared, r.MaxDiff)
	return err
}
