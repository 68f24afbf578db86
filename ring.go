package gear

import "math"

const (
	ringAddendumCoeff = 1.0
	ringDedendumCoeff = 1.157
)

// Ring calculates internal (annulus) gears. Addendum and dedendum swap
// direction with respect to external gears: teeth point toward the centre.
type Ring struct{}

var _ Calculator = Ring{} // Compile time check of interface implementation.

// Defaults returns a 2mm module, 60 tooth ring with conventional
// internal gear coefficients.
func (Ring) Defaults() Inputs {
	in := BaseInputs()
	in.Module = 2
	in.Teeth = 60
	in.AddendumCoeff = ringAddendumCoeff
	in.DedendumCoeff = ringDedendumCoeff
	return in
}

// Validate checks positivity and compares the pressure angle and
// coefficients against conventional internal gear values.
func (Ring) Validate(in Inputs) []string {
	var warnings []string
	if in.Module <= 0 {
		warnings = append(warnings, "Module must be greater than 0.")
	}
	if in.Teeth <= 0 {
		warnings = append(warnings, "Teeth count must be greater than 0.")
	}
	if in.AddendumCoeff <= 0 {
		warnings = append(warnings, "Addendum coefficient must be greater than 0.")
	}
	if in.DedendumCoeff <= 0 {
		warnings = append(warnings, "Dedendum coefficient must be greater than 0.")
	}
	standardPressure := near(in.PressureAngleDeg, pressureAngleLegacy, angleTolerance) ||
		near(in.PressureAngleDeg, pressureAngleISO, angleTolerance)
	if !standardPressure {
		warnings = append(warnings, "Ring gears typically use a 14.5° or 20° pressure angle.")
	}
	if math.Abs(in.AddendumCoeff-ringAddendumCoeff) > coeffTolerance {
		warnings = append(warnings, "Ring gear addendum is typically 1.0 × module.")
	}
	if math.Abs(in.DedendumCoeff-ringDedendumCoeff) > coeffTolerance {
		warnings = append(warnings, "Ring gear dedendum is typically 1.157 × module.")
	}
	return warnings
}

// Calculate returns ring gear dimensions. OutsideDiameter is the tip
// (inner) diameter and RootDiameter the larger cutter diameter.
func (Ring) Calculate(in Inputs) Outputs {
	module := clampPositive(ToMillimetres(in.Module, in.Unit))
	teeth := clampPositive(in.Teeth)

	out := NaNOutputs()
	out.Addendum = module * in.AddendumCoeff
	out.Dedendum = module * in.DedendumCoeff
	out.PitchDiameter = module * teeth
	out.OutsideDiameter = out.PitchDiameter - 2*out.Addendum
	out.RootDiameter = out.PitchDiameter + 2*out.Dedendum
	out.BaseCircle = out.PitchDiameter * math.Cos(DtoR(in.PressureAngleDeg))
	out.CircularPitch = pi * module
	return out
}
