package outline

import "github.com/soypat/gear"

// FromGear builds the outline request for a calculated gear, with radii
// converted from millimetres to the display unit u.
func FromGear(k gear.Kind, in gear.Inputs, out gear.Outputs, u gear.Unit) Request {
	disp := out.In(u)
	req := Request{
		Teeth:         in.Teeth,
		PitchRadius:   disp.PitchDiameter / 2,
		OutsideRadius: disp.OutsideDiameter / 2,
		RootRadius:    disp.RootDiameter / 2,
	}
	switch k {
	case gear.KindRing:
		req.Ring = true
	case gear.KindHelical:
		req.Profile = Soft
	case gear.KindWorm:
		req.Teeth = in.WheelTeeth
		req.Profile = Worm
	case gear.KindBevel:
		req.Teeth = in.PinionTeeth
	}
	return req
}
