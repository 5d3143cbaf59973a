package refraction

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-atmos/internal/testutil"
)

func TestSnellZeroIncidence(t *testing.T) {
	speeds := [][2]float64{{343, 343}, {100, 400}, {400, 100}, {1480, 340}, {-330, -350}}
	for _, v := range speeds {
		if got := Snell(0, v[0], v[1]); got != 0 {
			t.Fatalf("Snell(0, %v, %v) = %v, want 0", v[0], v[1], got)
		}
	}
}

func TestSnellEqualSpeeds(t *testing.T) {
	for _, theta := range []float64{-math.Pi / 2, -1.2, -0.3, 0, 0.1, 0.7, 1.5, math.Pi / 2} {
		got := Snell(theta, 343, 343)
		testutil.RequireClose(t, got, math.Asin(math.Sin(theta)), 1e-12)
		testutil.RequireClose(t, got, theta, 1e-12)
	}
}

func TestSnellOutsidePrincipalRange(t *testing.T) {
	// asin(sin(θ)) folds θ back into [-π/2, π/2].
	got := Snell(math.Pi-0.4, 343, 343)
	testutil.RequireClose(t, got, 0.4, 1e-12)
}

func TestSnellKnownValues(t *testing.T) {
	tests := []struct {
		name           string
		theta1, v1, v2 float64
		want           float64
	}{
		{name: "into faster medium", theta1: 0.2, v1: 340, v2: 400, want: 0.23591076872468886},
		{name: "air to water", theta1: 0.1, v1: 340, v2: 1480, want: 0.44955966114639523},
		{name: "into slower medium", theta1: 0.44955966114639523, v1: 1480, v2: 340, want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireClose(t, Snell(tt.theta1, tt.v1, tt.v2), tt.want, 1e-12)
		})
	}
}

func TestSnellTotalReflectionIsNaN(t *testing.T) {
	// argument 400*sin(π/2)/100 = 4
	testutil.RequireNaN(t, Snell(math.Pi/2, 100, 400))
	testutil.RequireNaN(t, Snell(-math.Pi/2, 100, 400))
	testutil.RequireNaN(t, Snell(0.5, 0, 343))
}

func TestCriticalAngle(t *testing.T) {
	theta := CriticalAngle(340, 400)
	testutil.RequireClose(t, theta, 1.015985293814825, 1e-12)
	if got := Snell(theta-1e-3, 340, 400); math.IsNaN(got) || got < 1.4 {
		t.Fatalf("Snell below critical angle = %v, want close to π/2", got)
	}

	if got := Snell(theta+1e-3, 340, 400); !math.IsNaN(got) {
		t.Fatalf("Snell beyond critical angle = %v, want NaN", got)
	}

	testutil.RequireNaN(t, CriticalAngle(400, 340))
}

func TestSnellSliceMatchesScalar(t *testing.T) {
	theta := []float64{0, 0.1, 0.5, 1.0, math.Pi / 2}
	v1 := []float64{343}
	v2 := []float64{300, 320, 343, 360, 400}

	got, err := SnellSlice(theta, v1, v2)
	if err != nil {
		t.Fatalf("SnellSlice error: %v", err)
	}
	if len(got) != len(theta) {
		t.Fatalf("len = %d, want %d", len(got), len(theta))
	}

	for i := range got {
		want := Snell(theta[i], v1[0], v2[i])
		testutil.RequireClose(t, got[i], want, 1e-15)
	}
}

func TestSnellSliceScalarOperands(t *testing.T) {
	got, err := SnellSlice([]float64{0.2}, []float64{340}, []float64{400})
	if err != nil {
		t.Fatalf("SnellSlice error: %v", err)
	}
	testutil.RequireSliceClose(t, got, []float64{0.23591076872468886}, 1e-12)
}

func TestSnellSliceEmpty(t *testing.T) {
	got, err := SnellSlice(nil, []float64{340}, []float64{400})
	if err != nil {
		t.Fatalf("SnellSlice error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestSnellSliceShapeMismatch(t *testing.T) {
	_, err := SnellSlice([]float64{0.1, 0.2, 0.3}, []float64{340, 350}, []float64{400})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("SnellSlice error = %v, want ErrShapeMismatch", err)
	}
}

func TestSnellInto(t *testing.T) {
	theta := []float64{0.1, 0.2, 0.3}
	dst := make([]float64, 3)

	if err := SnellInto(dst, theta, []float64{340}, []float64{360}); err != nil {
		t.Fatalf("SnellInto error: %v", err)
	}
	for i := range dst {
		testutil.RequireClose(t, dst[i], Snell(theta[i], 340, 360), 1e-15)
	}

	if err := SnellInto(make([]float64, 2), theta, []float64{340}, []float64{360}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("SnellInto short dst error = %v, want ErrShapeMismatch", err)
	}
}

func TestSnellIntoInPlace(t *testing.T) {
	theta := []float64{0.1, 0.2, 0.3}
	want := []float64{Snell(0.1, 340, 360), Snell(0.2, 340, 360), Snell(0.3, 340, 360)}

	if err := SnellInto(theta, theta, []float64{340}, []float64{360}); err != nil {
		t.Fatalf("SnellInto error: %v", err)
	}
	testutil.RequireSliceClose(t, theta, want, 1e-15)
}
