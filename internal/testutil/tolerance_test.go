package testutil

import (
	"math"
	"testing"
)

func TestRelDiff(t *testing.T) {
	if d := RelDiff(101, 100); math.Abs(d-0.01) > 1e-15 {
		t.Fatalf("RelDiff(101, 100) = %v, want 0.01", d)
	}

	if d := RelDiff(0.5, 0); d != 0.5 {
		t.Fatalf("RelDiff(0.5, 0) = %v, want absolute 0.5", d)
	}
}

func TestRequireClosePasses(t *testing.T) {
	RequireClose(t, 1+1e-13, 1, 1e-12)
	RequireClose(t, math.NaN(), math.NaN(), 0)
	RequireClose(t, math.Inf(1), math.Inf(1), 0)
	RequireSliceClose(t, []float64{1, 2}, []float64{1, 2 + 1e-14}, 1e-12)
	RequireNaN(t, math.NaN())
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestMaxRelDiff(t *testing.T) {
	d, err := MaxRelDiff([]float64{1, 2.2, 3}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("MaxRelDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-12 {
		t.Fatalf("MaxRelDiff = %v, want 0.1", d)
	}
}

func TestMaxRelDiffLengthMismatch(t *testing.T) {
	_, err := MaxRelDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxRelDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}

	d, err := MaxRelDiff(a, a)
	if err != nil {
		t.Fatalf("MaxRelDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxRelDiff = %v, want 0 for identical slices", d)
	}
}
