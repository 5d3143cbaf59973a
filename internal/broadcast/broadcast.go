// Package broadcast implements one-dimensional NumPy-style broadcasting
// for the slice variants of the acoustics formulas.
//
// Operands are compatible when their lengths are equal or one of them is 1.
// A length-1 operand is repeated to the common length. Empty operands
// broadcast against length-1 operands to an empty result.
package broadcast

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when operand lengths cannot be broadcast
// together.
var ErrShapeMismatch = errors.New("broadcast: incompatible shapes")

// Len returns the broadcast length of operands with the given lengths.
func Len(lens ...int) (int, error) {
	n := 1

	for _, l := range lens {
		switch {
		case l == 1:
		case n == 1:
			n = l
		case l != n:
			return 0, fmt.Errorf("%w: lengths %v", ErrShapeMismatch, lens)
		}
	}

	return n, nil
}

// CheckDst verifies that dst can hold a broadcast result of length n.
func CheckDst(dst []float64, n int) error {
	if len(dst) != n {
		return fmt.Errorf("%w: dst length %d, want %d", ErrShapeMismatch, len(dst), n)
	}

	return nil
}

// At returns s[i], or s[0] when s is a broadcast scalar.
func At(s []float64, i int) float64 {
	if len(s) == 1 {
		return s[0]
	}

	return s[i]
}

// Expand returns s repeated to length n. A slice that already has length n
// is returned as is, without copying.
func Expand(s []float64, n int) []float64 {
	if len(s) == n {
		return s
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = At(s, i)
	}

	return out
}
