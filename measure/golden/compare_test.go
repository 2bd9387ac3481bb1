package golden

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		actual   []int32
		expected []int32
		tol      int64
		want     Result
	}{
		{
			name: "exact",
			actual: []int32{1, 2, 3}, expected: []int32{1, 2, 3}, tol: 2,
			want: Result{Pass: true, Compared: 3},
		},
		{
			name: "within tolerance",
			actual: []int32{1, 2, 3}, expected: []int32{3, 0, 4}, tol: 2,
			want: Result{Pass: true, Compared: 3, MaxDiff: 2},
		},
		{
			name: "first mismatch wins",
			actual: []int32{1, 10, 20}, expected: []int32{1, 6, 0}, tol: 2,
			want: Result{Compared: 2, Index: 1, Actual: 10, Expected: 6},
		},
		{
			name: "zero tolerance",
			actual: []int32{5}, expected: []int32{4}, tol: 0,
			want: Result{Compared: 1, Index: 0, Actual: 5, Expected: 4},
		},
		{
			name: "extreme difference",
			actual: []int32{-1 << 31}, expected: []int32{1<<31 - 1}, tol: 2,
			want: Result{Compared: 1, Actual: -1 << 31, Expected: 1<<31 - 1},
		},
		{
			name: "golden too short",
			actual: []int32{1, 2}, expected: []int32{1}, tol: 2,
			want: Result{Compared: 2, Index: 1, Actual: 2, Missing: true},
		},
		{
			name: "golden longer",
			actual: []int32{1}, expected: []int32{1, 99}, tol: 2,
			want: Result{Pass: true, Compared: 1},
		},
		{
			name: "empty",
			want: Result{Pass: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.actual, tt.expected, tt.tol)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Compare mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReport(t *testing.T) {
	var sb strings.Builder
	if err := (Result{Pass: true, Compared: 4, MaxDiff: 1}).Report(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "PASS") || strings.Contains(out, "FAIL") {
		t.Fatalf("unexpected pass report:\n%s", out)
	}
	if !strings.Contains(out, "max deviation: 1") {
		t.Fatalf("missing deviation:\n%s", out)
	}

	sb.Reset()
	_ = Result{Compared: 8, Index: 7, Actual: 100, Expected: 90}.Report(&sb)
	if !strings.Contains(sb.String(), "FAIL at index 7: actual 100, expected 90") {
		t.Fatalf("unexpected fail report:\n%s", sb.String())
	}

	sb.Reset()
	_ = Result{Compared: 3, Index: 2, Actual: 5, Missing: true}.Report(&sb)
	if !strings.Contains(sb.String(), "index 2: actual 5, expected value missing") {
		t.Fatalf("unexpected missing report:\n%s", sb.String())
	}
}
