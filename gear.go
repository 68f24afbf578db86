package gear

import "math"

// Inputs holds the design parameters of a gear. Each Calculator reads
// only the fields relevant to its gear type and ignores the rest.
// Lengths (modules) are expressed in Unit; angles are in degrees.
type Inputs struct {
	Unit             Unit    `yaml:"unit" json:"unit"`
	PressureAngleDeg float64 `yaml:"pressureAngleDeg" json:"pressureAngleDeg"`
	AddendumCoeff    float64 `yaml:"addendumCoeff" json:"addendumCoeff"`
	DedendumCoeff    float64 `yaml:"dedendumCoeff" json:"dedendumCoeff"`

	Module       float64 `yaml:"module,omitempty" json:"module,omitempty"`             // spur, ring, bevel
	NormalModule float64 `yaml:"normalModule,omitempty" json:"normalModule,omitempty"` // helical
	AxialModule  float64 `yaml:"axialModule,omitempty" json:"axialModule,omitempty"`   // worm

	Teeth       float64 `yaml:"teeth,omitempty" json:"teeth,omitempty"` // spur, helical, ring
	PinionTeeth float64 `yaml:"pinionTeeth,omitempty" json:"pinionTeeth,omitempty"`
	GearTeeth   float64 `yaml:"gearTeeth,omitempty" json:"gearTeeth,omitempty"`
	WormStarts  float64 `yaml:"wormStarts,omitempty" json:"wormStarts,omitempty"`
	WheelTeeth  float64 `yaml:"wheelTeeth,omitempty" json:"wheelTeeth,omitempty"`

	HelixAngleDeg float64 `yaml:"helixAngleDeg,omitempty" json:"helixAngleDeg,omitempty"`
	LeadAngleDeg  float64 `yaml:"leadAngleDeg,omitempty" json:"leadAngleDeg,omitempty"`
	ShaftAngleDeg float64 `yaml:"shaftAngleDeg,omitempty" json:"shaftAngleDeg,omitempty"`
}

// BaseInputs returns the parameters shared by every gear type's defaults.
func BaseInputs() Inputs {
	return Inputs{
		Unit:             Millimetre,
		PressureAngleDeg: pressureAngleISO,
		AddendumCoeff:    1,
		DedendumCoeff:    1.25,
	}
}

// Outputs are the computed dimensions of a gear. Lengths are in millimetres.
// A NaN field is either not applicable to the gear type or depends on
// an invalid input.
type Outputs struct {
	PitchDiameter     float64 `yaml:"pitchDiameter" json:"pitchDiameter"`
	OutsideDiameter   float64 `yaml:"outsideDiameter" json:"outsideDiameter"`
	RootDiameter      float64 `yaml:"rootDiameter" json:"rootDiameter"`
	BaseCircle        float64 `yaml:"baseCircle" json:"baseCircle"`
	Addendum          float64 `yaml:"addendum" json:"addendum"`
	Dedendum          float64 `yaml:"dedendum" json:"dedendum"`
	CircularPitch     float64 `yaml:"circularPitch" json:"circularPitch"`
	Ratio             float64 `yaml:"ratio" json:"ratio"`
	CenterDistance    float64 `yaml:"centerDistance" json:"centerDistance"`
	PitchDiameterWorm float64 `yaml:"pitchDiameterWorm" json:"pitchDiameterWorm"`
}

// NaNOutputs returns Outputs with every field set to NaN.
func NaNOutputs() Outputs {
	nan := math.NaN()
	return Outputs{
		PitchDiameter:     nan,
		OutsideDiameter:   nan,
		RootDiameter:      nan,
		BaseCircle:        nan,
		Addendum:          nan,
		Dedendum:          nan,
		CircularPitch:     nan,
		Ratio:             nan,
		CenterDistance:    nan,
		PitchDiameterWorm: nan,
	}
}

// Field is a named output value.
type Field struct {
	Name  string
	Value float64
	// Length is false for dimensionless values (ratio).
	Length bool
}

// Fields returns the ten output values in display order.
func (o Outputs) Fields() []Field {
	return []Field{
		{"pitchDiameter", o.PitchDiameter, true},
		{"outsideDiameter", o.OutsideDiameter, true},
		{"rootDiameter", o.RootDiameter, true},
		{"baseCircle", o.BaseCircle, true},
		{"addendum", o.Addendum, true},
		{"dedendum", o.Dedendum, true},
		{"circularPitch", o.CircularPitch, true},
		{"ratio", o.Ratio, false},
		{"centerDistance", o.CenterDistance, true},
		{"pitchDiameterWorm", o.PitchDiameterWorm, true},
	}
}

// In returns a copy of o with every length converted from millimetres to u.
func (o Outputs) In(u Unit) Outputs {
	return Outputs{
		PitchDiameter:     FromMillimetres(o.PitchDiameter, u),
		OutsideDiameter:   FromMillimetres(o.OutsideDiameter, u),
		RootDiameter:      FromMillimetres(o.RootDiameter, u),
		BaseCircle:        FromMillimetres(o.BaseCircle, u),
		Addendum:          FromMillimetres(o.Addendum, u),
		Dedendum:          FromMillimetres(o.Dedendum, u),
		CircularPitch:     FromMillimetres(o.CircularPitch, u),
		Ratio:             o.Ratio,
		CenterDistance:    FromMillimetres(o.CenterDistance, u),
		PitchDiameterWorm: FromMillimetres(o.PitchDiameterWorm, u),
	}
}

// Calculator computes the dimensions of one gear type.
type Calculator interface {
	// Defaults returns a complete parameter set to start from.
	Defaults() Inputs
	// Validate returns advisory warnings in check order. It never fails;
	// Calculate may be called regardless of the warnings.
	Validate(in Inputs) []string
	// Calculate maps inputs to dimensions. Fields not applicable to the
	// gear type are NaN.
	Calculate(in Inputs) Outputs
}
