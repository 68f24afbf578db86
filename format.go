package gear

import (
	"math"
	"strconv"
)

// Placeholder is displayed in place of non-finite values.
const Placeholder = "—"

// Default decimal places for FormatNumber and FormatAngle.
const (
	NumberDecimals = 3
	AngleDecimals  = 2
)

// RoundTo rounds v to the given number of decimals with halves rounded
// up, towards positive infinity. Negative zero is returned as zero.
// ok is false when v is not finite.
func RoundTo(v float64, decimals int) (rounded float64, ok bool) {
	if !isFinite(v) {
		return 0, false
	}
	factor := math.Pow(10, float64(decimals))
	rounded = math.Floor(v*factor+0.5) / factor
	if rounded == 0 {
		rounded = 0
	}
	return rounded, true
}

// FormatNumber formats a length or ratio with fixed decimals.
func FormatNumber(v float64, decimals int) string {
	return formatFixed(v, decimals)
}

// FormatAngle formats an angle in degrees with fixed decimals.
func FormatAngle(v float64, decimals int) string {
	return formatFixed(v, decimals)
}

func formatFixed(v float64, decimals int) string {
	r, ok := RoundTo(v, decimals)
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(r, 'f', decimals, 64)
}

// LabelUnit returns the short label for u. Anything but Inch is "mm".
func LabelUnit(u Unit) string {
	if u == Inch {
		return "in"
	}
	return "mm"
}
