package gear

import "math"

// Worm calculates a worm and its mating wheel from the axial module.
// The primary diameters describe the wheel; PitchDiameterWorm the worm.
type Worm struct{}

var _ Calculator = Worm{} // Compile time check of interface implementation.

// Defaults returns a single start worm driving a 30 tooth wheel.
func (Worm) Defaults() Inputs {
	in := BaseInputs()
	in.AxialModule = 2
	in.WormStarts = 1
	in.WheelTeeth = 30
	in.LeadAngleDeg = 20
	return in
}

// Validate checks positivity and that the lead angle lies in (0°, 45°).
func (Worm) Validate(in Inputs) []string {
	var warnings []string
	if in.AxialModule <= 0 {
		warnings = append(warnings, "Axial module must be greater than 0.")
	}
	if in.WormStarts <= 0 {
		warnings = append(warnings, "Worm starts must be greater than 0.")
	}
	if in.WheelTeeth <= 0 {
		warnings = append(warnings, "Wheel teeth must be greater than 0.")
	}
	if in.LeadAngleDeg <= 0 || in.LeadAngleDeg >= 45 {
		warnings = append(warnings, "Lead angle should be between 0° and 45°.")
	}
	return warnings
}

// Calculate returns wheel dimensions with the worm pitch diameter,
// the rational ratio wheelTeeth/wormStarts and the center distance.
func (Worm) Calculate(in Inputs) Outputs {
	module := clampPositive(ToMillimetres(in.AxialModule, in.Unit))
	starts := clampPositive(in.WormStarts)
	wheelTeeth := clampPositive(in.WheelTeeth)

	out := NaNOutputs()
	out.Addendum = module * in.AddendumCoeff
	out.Dedendum = module * in.DedendumCoeff
	out.PitchDiameterWorm = module * starts
	out.PitchDiameter = module * wheelTeeth
	out.OutsideDiameter = out.PitchDiameter + 2*out.Addendum
	out.RootDiameter = out.PitchDiameter - 2*out.Dedendum
	out.BaseCircle = out.PitchDiameter * math.Cos(DtoR(in.PressureAngleDeg))
	out.CircularPitch = pi * module
	out.Ratio = wheelTeeth / starts
	out.CenterDistance = (out.PitchDiameterWorm + out.PitchDiameter) / 2
	return out
}
