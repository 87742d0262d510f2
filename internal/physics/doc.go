// Package physics implements the charged-particle force model.
//
// The force law is the simplified, axis-separable Coulomb interaction the
// simulation was built around: for each coordinate axis independently,
//
//	a = k * q1 * q2 / (|d| * m)
//
// where d is the axis separation and m the mass of the accelerated particle.
// It is not inverse-square and the denominator is unsigned; both properties
// are load-bearing for the visible dynamics and must not be "corrected".
//
// All quantities are float32. The charge and mass constants are toy
// magnitudes, not SI values.
package physics
