package refraction

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-atmos/internal/broadcast"
)

// ErrShapeMismatch is returned by the slice variants when operand lengths
// cannot be broadcast together.
var ErrShapeMismatch = broadcast.ErrShapeMismatch

// Snell returns the refracted angle θ2 = asin(v2*sin(θ1)/v1) for an
// incident angle theta1 (rad), incident speed v1 and refracted speed v2
// (m/s). No range checks are made on theta1.
func Snell(theta1, v1, v2 float64) float64 {
	return math.Asin(v2 * math.Sin(theta1) / v1)
}

// CriticalAngle returns the incidence angle beyond which a wave going from
// speed v1 into speed v2 is totally reflected. It is NaN when |v1| > |v2|,
// where every incidence angle refracts.
func CriticalAngle(v1, v2 float64) float64 {
	return math.Asin(v1 / v2)
}

// SnellSlice evaluates [Snell] elementwise with broadcasting and returns a
// new slice of the broadcast length.
func SnellSlice(theta1, v1, v2 []float64) ([]float64, error) {
	n, err := broadcast.Len(len(theta1), len(v1), len(v2))
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	snellBlock(out, theta1, v1, v2)

	return out, nil
}

// SnellInto is the allocation-light form of [SnellSlice]. dst must have the
// broadcast length of the operands.
func SnellInto(dst, theta1, v1, v2 []float64) error {
	n, err := broadcast.Len(len(theta1), len(v1), len(v2))
	if err != nil {
		return err
	}

	if err := broadcast.CheckDst(dst, n); err != nil {
		return err
	}

	snellBlock(dst, theta1, v1, v2)

	return nil
}

// snellBlock writes asin(v2*sin(θ1)/v1) into dst. dst may alias theta1
// only when both have the full broadcast length.
func snellBlock(dst, theta1, v1, v2 []float64) {
	n := len(dst)
	if n == 0 {
		return
	}

	sines := make([]float64, n)
	for i := range sines {
		sines[i] = math.Sin(broadcast.At(theta1, i))
	}

	vecmath.MulBlock(dst, broadcast.Expand(v2, n), sines)

	for i := range dst {
		dst[i] = math.Asin(dst[i] / broadcast.At(v1, i))
	}
}
