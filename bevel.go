package gear

import "math"

// Bevel calculates the pinion of a bevel gear pair using Tredgold's
// approximation: the pinion is treated as a spur gear with virtual teeth
// on its back cone.
type Bevel struct{}

var _ Calculator = Bevel{} // Compile time check of interface implementation.

// Defaults returns a 1:2 pair on perpendicular shafts.
func (Bevel) Defaults() Inputs {
	in := BaseInputs()
	in.Module = 2
	in.PinionTeeth = 20
	in.GearTeeth = 40
	in.ShaftAngleDeg = 90
	return in
}

// Validate always ends with a reminder that results are approximate.
func (Bevel) Validate(in Inputs) []string {
	var warnings []string
	if in.Module <= 0 {
		warnings = append(warnings, "Module must be greater than 0.")
	}
	if in.PinionTeeth <= 0 || in.GearTeeth <= 0 {
		warnings = append(warnings, "Teeth counts must be greater than 0.")
	}
	if in.ShaftAngleDeg <= 0 || in.ShaftAngleDeg >= 180 {
		warnings = append(warnings, "Shaft angle should be between 0° and 180°.")
	}
	return append(warnings, "Bevel calculations are approximations using virtual teeth.")
}

// Calculate returns pinion dimensions on the back cone. Ratio and
// CenterDistance describe the pair.
func (Bevel) Calculate(in Inputs) Outputs {
	module := clampPositive(ToMillimetres(in.Module, in.Unit))
	pinionTeeth := clampPositive(in.PinionTeeth)
	gearTeeth := clampPositive(in.GearTeeth)
	shaft := DtoR(in.ShaftAngleDeg)

	ratio := gearTeeth / pinionTeeth
	// Pinion pitch cone angle.
	delta := math.Atan(math.Sin(shaft) / (ratio + math.Cos(shaft)))
	virtualTeeth := pinionTeeth / math.Cos(delta)

	out := external(module, virtualTeeth, DtoR(in.PressureAngleDeg), in.AddendumCoeff, in.DedendumCoeff)
	out.Ratio = ratio
	out.CenterDistance = module * (pinionTeeth + gearTeeth) / 2
	return out
}
