package absorption

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-atmos/acoustics/atmosphere"
	"github.com/cwbudde/algo-atmos/internal/broadcast"
)

// ErrShapeMismatch is returned when frequency and layer slices cannot be
// broadcast together.
var ErrShapeMismatch = broadcast.ErrShapeMismatch

const (
	pr = atmosphere.ReferencePressure
	tr = atmosphere.ReferenceTemperature

	nepersToDB = 8.686
)

// terms holds the frequency-independent parts of the absorption formula
// for one layer.
type terms struct {
	classical      float64 // 1.84e-11 (p_a/p_r)^-1 (t_a/t_r)^0.5
	oxygenScale    float64 // (t_a/t_r)^-2.5
	oxygenWeight   float64 // 0.01278 e^(-2239.1/t_a)
	nitrogenWeight float64 // 0.1068 e^(-3352/t_a)
	fro            float64
	frn            float64
}

func newTerms(l atmosphere.Layer, e NitrogenExponent) terms {
	tA, pA := l.Temperature, l.Pressure
	h := l.Humidity()

	return terms{
		classical:      1.84e-11 * math.Pow(pA/pr, -1) * math.Pow(tA/tr, 0.5),
		oxygenScale:    math.Pow(tA/tr, -2.5),
		oxygenWeight:   0.01278 * math.Exp(-2239.1/tA),
		nitrogenWeight: 0.1068 * math.Exp(-3352.0/tA),
		fro:            oxygenRelaxation(pA, h),
		frn:            nitrogenRelaxation(tA, pA, h, e),
	}
}

// bracket returns the sum inside the square brackets of the absorption
// formula at frequency f.
func (t terms) bracket(f float64) float64 {
	f2 := f * f

	return t.classical +
		t.oxygenScale*(t.oxygenWeight*t.fro/(t.fro*t.fro+f2)) +
		t.nitrogenWeight*t.frn/(t.frn*t.frn+f2)
}

func (t terms) at(f float64) float64 {
	return (nepersToDB * f * f) * t.bracket(f)
}

// block writes the coefficient at each frequency into dst.
func (t terms) block(dst, f []float64) {
	if len(dst) == 0 {
		return
	}

	brackets := make([]float64, len(dst))
	for i := range dst {
		fi := broadcast.At(f, i)
		brackets[i] = t.bracket(fi)
		dst[i] = nepersToDB * fi * fi
	}

	vecmath.MulBlockInPlace(dst, brackets)
}

func oxygenRelaxation(pA, h float64) float64 {
	return pA * (24 + (4.04e4*h)*(0.02+h)/(0.391+h))
}

func nitrogenRelaxation(tA, pA, h float64, e NitrogenExponent) float64 {
	ratio := tA / tr

	var exponent float64
	if e == NitrogenExponentISO {
		exponent = -4.17 * (math.Pow(ratio, -1.0/3) - 1)
	} else {
		exponent = -4.17*math.Pow(ratio, -1)/3 - 1
	}

	return pA * math.Pow(ratio, -0.5) * (9 + 280*h*math.Exp(exponent))
}

// OxygenRelaxation returns the oxygen relaxation frequency f_rO of the
// layer in Hz.
func OxygenRelaxation(l atmosphere.Layer) float64 {
	return oxygenRelaxation(l.Pressure, l.Humidity())
}

// NitrogenRelaxation returns the nitrogen relaxation frequency f_rN of the
// layer in Hz. See [WithNitrogenExponent] for the exponent forms.
func NitrogenRelaxation(l atmosphere.Layer, opts ...Option) float64 {
	cfg := ApplyOptions(opts...)
	return nitrogenRelaxation(l.Temperature, l.Pressure, l.Humidity(), cfg.NitrogenExponent)
}

// Coefficient returns the sound attenuation coefficient in dB/m at
// frequency f (Hz) for the layer.
func Coefficient(f float64, l atmosphere.Layer, opts ...Option) float64 {
	cfg := ApplyOptions(opts...)
	return newTerms(l, cfg.NitrogenExponent).at(f)
}

// CoefficientSlice returns [Coefficient] for each frequency in f. The layer
// terms are evaluated once.
func CoefficientSlice(f []float64, l atmosphere.Layer, opts ...Option) []float64 {
	if len(f) == 0 {
		return nil
	}

	cfg := ApplyOptions(opts...)
	out := make([]float64, len(f))
	newTerms(l, cfg.NitrogenExponent).block(out, f)

	return out
}

// CoefficientInto writes [Coefficient] for each frequency in f into dst.
// dst must have the same length as f and may alias it.
func CoefficientInto(dst, f []float64, l atmosphere.Layer, opts ...Option) error {
	if err := broadcast.CheckDst(dst, len(f)); err != nil {
		return err
	}

	cfg := ApplyOptions(opts...)
	newTerms(l, cfg.NitrogenExponent).block(dst, f)

	return nil
}

// CoefficientBroadcast evaluates [Coefficient] elementwise over frequencies
// and layers. Either slice may have length 1, otherwise both lengths must
// match.
func CoefficientBroadcast(f []float64, layers []atmosphere.Layer, opts ...Option) ([]float64, error) {
	n, err := broadcast.Len(len(f), len(layers))
	if err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)
	out := make([]float64, n)

	if len(layers) == 1 {
		newTerms(layers[0], cfg.NitrogenExponent).block(out, f)
		return out, nil
	}

	for i := range out {
		out[i] = newTerms(layers[i], cfg.NitrogenExponent).at(broadcast.At(f, i))
	}

	return out, nil
}
