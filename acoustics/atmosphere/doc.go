// Package atmosphere describes a single stratum of the atmosphere for
// acoustic propagation formulas.
//
// A [Layer] bundles the ambient temperature (K), ambient pressure (kPa),
// relative humidity (%) and a depth value whose unit is left to the caller.
// Layers are plain values: nothing in this module mutates them, and no
// function reads the depth. Assembling layers into a stack or a ray path is
// the caller's concern.
//
// The package also exposes the humidity algebra of ISO 9613-1 that the
// absorption model builds on: the saturation vapour pressure over a
// reference isotherm and the resulting water vapour concentration.
package atmosphere
