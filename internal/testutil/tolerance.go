package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RelDiff returns |got-want| scaled by |want|. When want is zero the
// absolute difference is returned instead.
func RelDiff(got, want float64) float64 {
	diff := math.Abs(got - want)
	if want == 0 {
		return diff
	}

	return diff / math.Abs(want)
}

// RequireClose fails t if got differs from want by more than the relative
// tolerance tol. NaN only matches NaN, and infinities must match exactly.
func RequireClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(want) || math.IsInf(want, 0) {
		if (math.IsNaN(want) && math.IsNaN(got)) || got == want {
			return
		}
		t.Fatalf("got %v, want %v", got, want)
	}
	if d := RelDiff(got, want); !(d <= tol) {
		t.Fatalf("got %v, want %v (rel diff %v > tol %v)", got, want, d, tol)
	}
}

// RequireSliceClose fails t if got and want differ in length or if any
// element pair exceeds the relative tolerance tol.
func RequireSliceClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := RelDiff(got[i], want[i]); !(d <= tol) {
			t.Fatalf("index %d: got %v, want %v (rel diff %v > tol %v)", i, got[i], want[i], d, tol)
		}
	}
}

// RequireNaN fails t if v is not NaN.
func RequireNaN(t *testing.T, v float64) {
	t.Helper()
	if !math.IsNaN(v) {
		t.Fatalf("got %v, want NaN", v)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxRelDiff returns the largest RelDiff over two slices.
// Returns an error if the slices differ in length.
func MaxRelDiff(got, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxDiff := 0.0
	for i := range got {
		if d := RelDiff(got[i], want[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
