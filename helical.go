package gear

import "math"

// Helical calculates helical gears from their normal module.
type Helical struct{}

var _ Calculator = Helical{} // Compile time check of interface implementation.

// Defaults returns a 2mm normal module, 20 tooth gear with a 15° helix.
func (Helical) Defaults() Inputs {
	in := BaseInputs()
	in.NormalModule = 2
	in.Teeth = 20
	in.HelixAngleDeg = 15
	return in
}

// Validate checks module and teeth are positive and the helix angle
// lies within the usual open range (0°, 45°).
func (Helical) Validate(in Inputs) []string {
	var warnings []string
	if in.NormalModule <= 0 {
		warnings = append(warnings, "Normal module must be greater than 0.")
	}
	if in.Teeth <= 0 {
		warnings = append(warnings, "Teeth count must be greater than 0.")
	}
	if in.HelixAngleDeg <= 0 || in.HelixAngleDeg >= 45 {
		warnings = append(warnings, "Helix angle should be between 0° and 45°.")
	}
	return warnings
}

// Calculate returns the transverse plane dimensions of a helical gear.
func (Helical) Calculate(in Inputs) Outputs {
	normalModule := clampPositive(ToMillimetres(in.NormalModule, in.Unit))
	teeth := clampPositive(in.Teeth)
	helix := DtoR(in.HelixAngleDeg)
	pressure := DtoR(in.PressureAngleDeg)

	cosHelix := math.Cos(helix)
	transverseModule := normalModule / cosHelix
	transversePressure := math.Atan(math.Tan(pressure) / cosHelix)
	return external(transverseModule, teeth, transversePressure, in.AddendumCoeff, in.DedendumCoeff)
}
