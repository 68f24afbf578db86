package gear

import "math"

// Spur calculates straight-toothed external gears.
type Spur struct{}

var _ Calculator = Spur{} // Compile time check of interface implementation.

// Defaults returns a 2mm module, 20 tooth spur gear.
func (Spur) Defaults() Inputs {
	in := BaseInputs()
	in.Module = 2
	in.Teeth = 20
	return in
}

// Validate checks module and teeth are positive.
func (Spur) Validate(in Inputs) []string {
	var warnings []string
	if in.Module <= 0 {
		warnings = append(warnings, "Module must be greater than 0.")
	}
	if in.Teeth <= 0 {
		warnings = append(warnings, "Teeth count must be greater than 0.")
	}
	return warnings
}

// Calculate returns spur gear dimensions. A spur gear is a helical gear
// with zero helix angle so the normal and transverse planes coincide.
func (Spur) Calculate(in Inputs) Outputs {
	module := clampPositive(ToMillimetres(in.Module, in.Unit))
	teeth := clampPositive(in.Teeth)
	return external(module, teeth, DtoR(in.PressureAngleDeg), in.AddendumCoeff, in.DedendumCoeff)
}

// external fills the dimensions common to external gears with the
// given module [mm], teeth and pressure angle [radians].
func external(module, teeth, pressureAngle, addendumCoeff, dedendumCoeff float64) Outputs {
	out := NaNOutputs()
	out.Addendum = module * addendumCoeff
	out.Dedendum = module * dedendumCoeff
	out.PitchDiameter = module * teeth
	out.OutsideDiameter = out.PitchDiameter + 2*out.Addendum
	out.RootDiameter = out.PitchDiameter - 2*out.Dedendum
	out.BaseCircle = out.PitchDiameter * math.Cos(pressureAngle)
	out.CircularPitch = pi * module
	return out
}
