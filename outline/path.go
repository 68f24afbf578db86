package outline

import (
	"math"
	"strconv"
	"strings"

	"github.com/soypat/gear"
	"gonum.org/v1/gonum/spatial/r2"
)

// snap is the magnitude below which coordinates are written as 0.
const snap = 1e-9

// num formats a coordinate with the shortest representation that
// round-trips, without exponent notation.
func num(v float64) string {
	if math.Abs(v) < snap {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// polylinePath returns a closed path through pts.
func polylinePath(pts []r2.Vec) string {
	if len(pts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(pts) * 24)
	for i, p := range pts {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(' ')
		sb.WriteString(num(p.Y))
	}
	sb.WriteString(" Z")
	return sb.String()
}

// CirclePath returns a closed full circle of radius r centred at the origin
// drawn as two half arcs. reverse selects the negative sweep direction.
// Invalid radii return the empty string.
func CirclePath(r float64, reverse bool) string {
	if !gear.IsFinitePositive(r) {
		return ""
	}
	sweep := "1"
	if reverse {
		sweep = "0"
	}
	rs, neg := num(r), num(-r)
	arc := " A " + rs + " " + rs + " 0 1 " + sweep + " "
	return "M " + rs + " 0" + arc + neg + " 0" + arc + rs + " 0 Z"
}

// DefaultPadding is the margin ScaleToViewBox leaves around the outline.
const DefaultPadding = 18

// ViewBox is a square region centred at the origin.
type ViewBox struct {
	MinX, MinY float64
	Size       float64
}

// ScaleToViewBox returns the square view box that fits a circle of the
// given radius with padding on every side. Invalid radii are treated as 1.
func ScaleToViewBox(radius, padding float64) ViewBox {
	if !gear.IsFinitePositive(radius) {
		radius = 1
	}
	size := 2 * (radius + padding)
	return ViewBox{MinX: -size / 2, MinY: -size / 2, Size: size}
}

// String returns the SVG viewBox attribute value "minX minY width height".
func (vb ViewBox) String() string {
	s := num(vb.Size)
	return num(vb.MinX) + " " + num(vb.MinY) + " " + s + " " + s
}
