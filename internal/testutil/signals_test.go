package testutil

import "testing"

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1000, 64)
	b := DeterministicNoise(42, 1000, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1000 || a[i] > 1000 {
			t.Fatalf("a[%d] = %d out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1<<15, 16)
	b := DeterministicNoise(2, 1<<15, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3, 5)
	for i, v := range imp {
		if i == 3 {
			if v != 5 {
				t.Fatalf("imp[3] = %d, want 5", v)
			}
		} else if v != 0 {
			t.Fatalf("imp[%d] = %d, want 0", i, v)
		}
	}
}

func TestImpulseOutOfBounds(t *testing.T) {
	for i, v := range Impulse(4, 10, 1) {
		if v != 0 {
			t.Fatalf("imp[%d] = %d, want all zeros for out-of-bounds pos", i, v)
		}
	}
}

func TestDC(t *testing.T) {
	for i, v := range DC(-7, 4) {
		if v != -7 {
			t.Fatalf("DC[%d] = %d, want -7", i, v)
		}
	}
}

func TestCausal(t *testing.T) {
	got := Causal([]int32{1, 2, 3}, []int32{1, 0, 0, 0})
	RequireSliceEqual(t, got, []int32{1, 2, 3, 0})

	got = Causal([]int32{1, -1}, []int32{0, 1, 3, 6, 10})
	RequireSliceEqual(t, got, []int32{0, 1, 2, 3, 4})
}

func TestCausalWraps(t *testing.T) {
	got := Causal([]int32{2}, []int32{1 << 30})
	RequireSliceEqual(t, got, []int32{-1 << 31})
}
