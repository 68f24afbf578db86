// Package outline synthesizes approximate gear tooth outlines for 2D
// visualization. Teeth are built from circular arcs around the root and tip
// circles; no involute flank is computed.
package outline

import (
	"math"
	"strings"

	"github.com/soypat/gear"
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// MinTeeth is the fewest teeth an outline is drawn with.
	MinTeeth = 6
	// MaxTeeth is the most teeth an outline is drawn with. Larger
	// counts are rejected as invalid.
	MaxTeeth = 100000
	// rootFraction of the pitch radius is used when no root radius is given.
	rootFraction = 0.85
)

// Profile selects the angular width of tooth tips and roots.
type Profile int

const (
	Standard Profile = iota
	Soft
	Worm
)

var profiles = [...]struct {
	name                string
	tipRatio, rootRatio float64
}{
	Standard: {"standard", 0.38, 0.42},
	Soft:     {"soft", 0.48, 0.55},
	Worm:     {"worm", 0.6, 0.7},
}

func (p Profile) valid() bool { return p >= 0 && int(p) < len(profiles) }

func (p Profile) String() string {
	if !p.valid() {
		return profiles[Standard].name
	}
	return profiles[p].name
}

// ratios returns the tip and root widths as fractions of the tooth angle.
// Unknown profiles behave as Standard.
func (p Profile) ratios() (tip, root float64) {
	if !p.valid() {
		p = Standard
	}
	return profiles[p].tipRatio, profiles[p].rootRatio
}

// ParseProfile returns the profile named s. Unrecognized names return Standard.
func ParseProfile(s string) Profile {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, p := range profiles {
		if p.name == s {
			return Profile(i)
		}
	}
	return Standard
}

// Request describes the outline to draw. Radii are in drawing units.
type Request struct {
	Teeth       float64
	PitchRadius float64
	// OutsideRadius is the tip circle radius. Non-positive values
	// place the tips on the pitch circle.
	OutsideRadius float64
	// RootRadius defaults to 85% of PitchRadius when non-positive.
	RootRadius float64
	// Ring draws an internal gear: a root circle with the toothed
	// boundary cut out of it.
	Ring    bool
	Profile Profile
}

// geometry is a validated Request resolved into drawing parameters.
type geometry struct {
	count      int
	toothAngle float64
	tipAngle   float64
	rootAngle  float64
	tipRadius  float64
	baseRadius float64

	detailSteps int // flank arcs
	tipSteps    int
	rootSteps   int // gap between teeth
}

func (req Request) geometry() (g geometry, ok bool) {
	if !gear.IsFinitePositive(req.Teeth) || !gear.IsFinitePositive(req.PitchRadius) ||
		req.Teeth >= MaxTeeth+0.5 {
		return g, false
	}
	g.count = int(math.Round(req.Teeth))
	if g.count < MinTeeth {
		g.count = MinTeeth
	}
	n := float64(g.count)
	tipRatio, rootRatio := req.Profile.ratios()
	g.toothAngle = 2 * math.Pi / n
	g.tipAngle = g.toothAngle * tipRatio
	g.rootAngle = g.toothAngle * rootRatio

	g.tipRadius = req.PitchRadius
	if gear.IsFinitePositive(req.OutsideRadius) {
		g.tipRadius = req.OutsideRadius
	}
	g.baseRadius = req.PitchRadius * rootFraction
	if gear.IsFinitePositive(req.RootRadius) {
		g.baseRadius = req.RootRadius
	}
	// Fewer samples per arc as teeth increase keeps the total point count
	// roughly constant.
	g.detailSteps = steps(72/n, 3)
	g.tipSteps = steps(90/n, 3)
	g.rootSteps = steps(60/n, 2)
	return g, true
}

func steps(v float64, min int) int {
	s := int(math.Round(v))
	if s < min {
		return min
	}
	return s
}

// arc appends steps+1 points along a circle of radius r from angle a0 to a1.
func arc(dst d2.Set, r, a0, a1 float64, steps int) d2.Set {
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		dst = append(dst, d2.PolarToXY(r, a0+(a1-a0)*t))
	}
	return dst
}

// points walks the teeth counter-clockwise starting half a root width
// before the first tooth centre on the positive X axis.
func (g geometry) points() d2.Set {
	perTooth := 2*(g.detailSteps+1) + g.tipSteps + 1 + g.rootSteps + 1
	pts := make(d2.Set, 0, g.count*perTooth+1)
	for i := 0; i < g.count; i++ {
		base := float64(i) * g.toothAngle
		rootStart := base - g.rootAngle/2
		rootEnd := base + g.rootAngle/2
		tipStart := base - g.tipAngle/2
		tipEnd := base + g.tipAngle/2
		if i == 0 {
			pts = append(pts, d2.PolarToXY(g.baseRadius, rootStart))
		}
		pts = arc(pts, g.baseRadius, rootStart, tipStart, g.detailSteps)
		pts = arc(pts, g.tipRadius, tipStart, tipEnd, g.tipSteps)
		pts = arc(pts, g.baseRadius, tipEnd, rootEnd, g.detailSteps)
		pts = arc(pts, g.baseRadius, rootEnd, rootStart+g.toothAngle, g.rootSteps)
	}
	return pts
}

// Points returns the toothed boundary as a polyline, nil if the request
// has no valid teeth count or pitch radius. Teeth counts rounding above
// MaxTeeth are invalid. In Ring mode the same
// boundary is returned; the enclosing root circle is not included.
func Points(req Request) []r2.Vec {
	g, ok := req.geometry()
	if !ok {
		return nil
	}
	return g.points()
}

// Build returns the outline as a path in the SVG path mini-language
// (M, L, A and Z commands). It returns the empty string for invalid requests.
//
// Ring outlines consist of two closed subpaths: the root circle followed
// by the toothed boundary in reverse order so the two wind in opposite
// directions and an even-odd or nonzero fill renders an annulus.
func Build(req Request) string {
	g, ok := req.geometry()
	if !ok {
		return ""
	}
	pts := g.points()
	if !req.Ring {
		return polylinePath(pts)
	}
	outer := CirclePath(g.baseRadius, false)
	inner := polylinePath(pts.Reversed())
	return strings.TrimSpace(outer + " " + inner)
}

// MaxRadius returns the largest radius the outline reaches, zero for
// invalid requests.
func MaxRadius(req Request) float64 {
	g, ok := req.geometry()
	if !ok {
		return 0
	}
	return math.Max(g.tipRadius, g.baseRadius)
}
