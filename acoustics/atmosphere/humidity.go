package atmosphere

import "math"

// SaturationExponent returns v, the base-10 exponent of the saturation
// vapour pressure ratio p_sat/p_r at temperature tA (K).
//
// Non-positive temperatures are not guarded and yield NaN or Inf.
func SaturationExponent(tA float64) float64 {
	const t01 = TriplePointTemperature

	return 10.79586*(1-t01/tA) -
		5.02808*math.Log10(tA/t01) +
		1.50474e-4*(1-math.Pow(10, -8.29692*(tA/t01-1))) +
		0.42873e-6*(-1+math.Pow(10, 4.76955*(1-t01/tA))) -
		2.2195983
}

// SaturationPressure returns the saturation vapour pressure p_sat in kPa
// at temperature tA (K).
func SaturationPressure(tA float64) float64 {
	return ReferencePressure * math.Pow(10, SaturationExponent(tA))
}

// Humidity returns the water vapour concentration h of the layer:
//
//	h = h_rel * (p_sat/p_r) * (p_a/p_r)^-1
func (l Layer) Humidity() float64 {
	const pr = ReferencePressure

	pSat := SaturationPressure(l.Temperature)

	return l.RelativeHumidity * (pSat / pr) * math.Pow(l.Pressure/pr, -1)
}
