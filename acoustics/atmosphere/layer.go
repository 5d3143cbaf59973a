package atmosphere

import "fmt"

// Reference conditions used by the ISO 9613-1 formulas.
const (
	ReferencePressure      = 101.325 // kPa, 1 atm
	ReferenceTemperature   = 293.15  // K
	TriplePointTemperature = 273.16  // K, triple-point isotherm of water
)

// Layer is one atmospheric stratum with uniform conditions.
//
// Field order is fixed so that positional literals such as
// Layer{293.15, 101.325, 50, 0} keep working.
type Layer struct {
	Temperature      float64 // ambient temperature t_a in K, expected > 0
	Pressure         float64 // ambient pressure p_a in kPa, expected > 0
	RelativeHumidity float64 // relative humidity h_rel in percent, not clamped
	Depth            float64 // layer depth d, unit defined by the caller
}

// NewLayer returns a Layer from its positional fields.
func NewLayer(tA, pA, hRel, d float64) Layer {
	return Layer{
		Temperature:      tA,
		Pressure:         pA,
		RelativeHumidity: hRel,
		Depth:            d,
	}
}

// String implements fmt.Stringer.
func (l Layer) String() string {
	return fmt.Sprintf("t_a=%gK p_a=%gkPa h_rel=%g%% d=%g",
		l.Temperature, l.Pressure, l.RelativeHumidity, l.Depth)
}
