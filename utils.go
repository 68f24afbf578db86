package gear

import "math"

const (
	pi = math.Pi

	// standard pressure angles [degrees] and the tolerance used to match them.
	pressureAngleISO    = 20.0
	pressureAngleLegacy = 14.5
	angleTolerance      = 0.01
	coeffTolerance      = 0.01
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// IsFinitePositive reports whether v is a finite number greater than zero.
func IsFinitePositive(v float64) bool { return isFinite(v) && v > 0 }

// clampPositive maps non-finite and non-positive values to NaN so that
// a single invalid input poisons every result that depends on it.
func clampPositive(v float64) float64 {
	if IsFinitePositive(v) {
		return v
	}
	return math.NaN()
}

// near reports whether a and b are strictly closer than tol.
func near(a, b, tol float64) bool { return math.Abs(a-b) < tol }
