// Package gear computes the principal dimensions of spur, helical, ring,
// worm and bevel gears from their design parameters.
//
// Calculations never fail. An invalid input yields NaN in every output that
// depends on it and advisory warnings are reported separately by
// Calculator.Validate. Outlines for visualization live in package outline.
package gear
