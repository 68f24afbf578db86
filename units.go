package gear

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// MillimetresPerInch is millimetres per inch (25.4)
	MillimetresPerInch = 25.4
	// InchesPerMillimetre is inches per millimetre
	InchesPerMillimetre = 1.0 / MillimetresPerInch
)

// Unit is the linear unit a length is expressed in.
type Unit string

const (
	Millimetre Unit = "mm"
	Inch       Unit = "in"
)

// ErrUnknownUnit is returned by ParseUnit for unsupported unit names.
var ErrUnknownUnit = errors.New("unknown unit")

// ParseUnit returns the Unit named by s.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimetre", "millimeter", "millimetres", "millimeters":
		return Millimetre, nil
	case "in", "inch", "inches":
		return Inch, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownUnit, s)
}

// ToMillimetres converts v expressed in unit u to millimetres.
// Non-finite values return NaN.
func ToMillimetres(v float64, u Unit) float64 {
	if !isFinite(v) {
		return math.NaN()
	}
	if u == Inch {
		return v * MillimetresPerInch
	}
	return v
}

// FromMillimetres converts v millimetres to unit u.
// Non-finite values return NaN.
func FromMillimetres(v float64, u Unit) float64 {
	if !isFinite(v) {
		return math.NaN()
	}
	if u == Inch {
		return v / MillimetresPerInch
	}
	return v
}

// ConvertLength converts a length between units. Non-finite values
// and equal units are returned unchanged.
func ConvertLength(v float64, from, to Unit) float64 {
	if !isFinite(v) || from == to {
		return v
	}
	return FromMillimetres(ToMillimetres(v, from), to)
}
