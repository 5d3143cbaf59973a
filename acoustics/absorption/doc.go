// Package absorption computes atmospheric sound absorption following the
// ISO 9613-1 / ANSI S1.26 pure-tone model.
//
// The attenuation coefficient a_f (dB/m) of a homogeneous [atmosphere.Layer]
// is the sum of a classical and rotational term and two vibrational
// relaxation terms, one for oxygen and one for nitrogen:
//
//	a_f = 8.686 f² [ 1.84e-11 (p_a/p_r)^-1 (t_a/t_r)^0.5
//	               + (t_a/t_r)^-2.5 · 0.01278 e^(-2239.1/t_a) f_rO/(f_rO² + f²)
//	               + 0.1068 e^(-3352/t_a) f_rN/(f_rN² + f²) ]
//
// # Nitrogen relaxation exponent
//
// The default [NitrogenExponentLiteral] evaluates the nitrogen relaxation
// frequency with the exponential term written as
//
//	exp(-4.17 (t_a/t_r)^-1 / 3 - 1)
//
// The published ISO 9613-1 form is exp(-4.17 ((t_a/t_r)^(-1/3) - 1)) and is
// available through [WithNitrogenExponent]([NitrogenExponentISO]). The two
// differ noticeably below a few kHz.
//
// # Validation
//
// Inputs are not validated. Non-positive temperatures, zero pressures or
// zero denominators propagate as NaN or Inf.
//
// # Filtering
//
// [Filter] applies the absorption of a layer over a propagation distance to
// a sampled signal as a zero-phase FFT filter.
package absorption
