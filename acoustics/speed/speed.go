// Package speed provides the linear dry-air speed of sound model.
//
// The model is c = 331 + 0.6*t_a with t_a taken in kelvin, exactly as the
// absorption and refraction formulas of this module expect it. The linear
// form is historically quoted for degrees Celsius; it is kept as is here and
// makes no correction for humidity.
package speed

import (
	"github.com/cwbudde/algo-atmos/acoustics/atmosphere"
	"github.com/cwbudde/algo-atmos/internal/broadcast"
)

// ErrShapeMismatch is returned by [SoundSpeedInto] when dst has the wrong
// length.
var ErrShapeMismatch = broadcast.ErrShapeMismatch

const (
	base  = 331.0 // m/s
	slope = 0.6   // m/s per K
)

// SoundSpeed returns the speed of sound in m/s at temperature tA.
func SoundSpeed(tA float64) float64 {
	return base + slope*tA
}

// ForLayer returns the speed of sound for the layer temperature.
func ForLayer(l atmosphere.Layer) float64 {
	return SoundSpeed(l.Temperature)
}

// SoundSpeedSlice evaluates [SoundSpeed] for each temperature.
func SoundSpeedSlice(tA []float64) []float64 {
	if len(tA) == 0 {
		return nil
	}

	out := make([]float64, len(tA))
	for i, t := range tA {
		out[i] = SoundSpeed(t)
	}

	return out
}

// SoundSpeedInto writes [SoundSpeed] of each temperature into dst.
// dst may alias tA.
func SoundSpeedInto(dst, tA []float64) error {
	if err := broadcast.CheckDst(dst, len(tA)); err != nil {
		return err
	}

	for i, t := range tA {
		dst[i] = SoundSpeed(t)
	}

	return nil
}
