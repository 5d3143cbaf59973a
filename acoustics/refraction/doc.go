// Package refraction implements Snell's law for acoustic wavefronts
// crossing a boundary between two media with different sound speeds.
//
//	sin(θ2) / v2 = sin(θ1) / v1
//
// Angles are in radians and measured from the boundary normal. When the
// refracted wave would need |sin(θ2)| > 1 (total reflection) the result is
// NaN, following the IEEE semantics of math.Asin. The functions never
// return an error for that case; callers check with math.IsNaN.
//
// The slice variants broadcast their operands the way NumPy does for
// one-dimensional arrays: lengths must be equal or 1.
package refraction
