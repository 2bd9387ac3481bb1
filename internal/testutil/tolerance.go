package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// RequireSliceEqual fails t with a diff if got and want differ.
func RequireSliceEqual(t *testing.T, got, want []int32) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("slice mismatch (-want +got):\n%s", diff)
	}
}

// RequireSliceWithin fails t if got and want differ in length or if any
// element pair differs by more than tol.
func RequireSliceWithin(t *testing.T, got, want []int32, tol int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		d := absDiff(got[i], want[i])
		if d > tol {
			t.Fatalf("index %d: got %d, want %d (diff %d > tol %d)", i, got[i], want[i], d, tol)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []int32) (int64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff int64
	for i := range a {
		if d := absDiff(a[i], b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// AddPointwise returns a[i] + b[i] with int32 wraparound.
func AddPointwise(a, b []int32) []int32 {
	n := min(len(a), len(b))
	out := make([]int32, n)
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

func absDiff(a, b int32) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}
	return d
}
