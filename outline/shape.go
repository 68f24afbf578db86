package outline

import (
	"errors"
	"math"

	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// ErrInvalidRequest is returned by Shape when the request has no valid
// teeth count or pitch radius.
var ErrInvalidRequest = errors.New("outline: teeth and pitch radius must be finite and positive")

// ErrDegenerate is returned by Shape when the outline is too small for
// its vertices to be told apart.
var ErrDegenerate = errors.New("outline: radii too small to resolve a polygon")

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate returns the minimum distance of the shape to p. The
	// distance is negative if p is contained within the shape.
	Evaluate(p r2.Vec) float64
	// Bounds returns the bounding box that completely contains the shape.
	Bounds() r2.Box
}

// Shape returns the filled region described by req as an SDF2: the
// toothed polygon for external gears, the root circle minus the toothed
// polygon for rings.
func Shape(req Request) (SDF2, error) {
	g, ok := req.geometry()
	if !ok {
		return nil, ErrInvalidRequest
	}
	pts := dedupe(g.points())
	if len(pts) < 3 {
		return nil, ErrDegenerate
	}
	teeth := Polygon(pts)
	if !req.Ring {
		return teeth, nil
	}
	return Difference(Circle(g.baseRadius), teeth), nil
}

// circle is the 2d signed distance object for a circle.
type circle struct {
	radius float64
	bb     r2.Box
}

// Circle returns the SDF2 for a circle centred at the origin.
func Circle(radius float64) SDF2 {
	if radius < 0 {
		panic("radius < 0")
	}
	d := d2.Elem(radius)
	return &circle{radius: radius, bb: r2.Box{Min: r2.Scale(-1, d), Max: d}}
}

func (s *circle) Evaluate(p r2.Vec) float64 { return r2.Norm(p) - s.radius }

func (s *circle) Bounds() r2.Box { return s.bb }

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// dedupe drops consecutive repeated vertices and a trailing vertex that
// repeats the first. Arcs share their end points.
func dedupe(vertex []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, 0, len(vertex)+1)
	for _, v := range vertex {
		if n := len(out); n == 0 || !d2.EqualWithin(v, out[n-1], tolerance) {
			out = append(out, v)
		}
	}
	if n := len(out); n > 1 && d2.EqualWithin(out[0], out[n-1], tolerance) {
		out = out[:n-1]
	}
	return out
}

// Polygon returns an SDF2 made from a closed set of line segments.
// It panics with fewer than 3 distinct vertices.
func Polygon(vertex []r2.Vec) SDF2 {
	s := polygon{}
	s.vertex = dedupe(vertex)
	if len(s.vertex) < 3 {
		panic("number of vertices < 3")
	}
	// Close the loop.
	s.vertex = append(s.vertex, s.vertex[0])

	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		s.vector[i] = r2.Unit(l)
	}
	set := d2.Set(s.vertex)
	s.bb = r2.Box{Min: set.Min(), Max: set.Max()}
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])
	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa))
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb))
		default:
			dd = math.Min(dd, dn*dn)
		}

		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

func (s *polygon) Bounds() r2.Box { return s.bb }

type diff2 struct {
	s0, s1 SDF2
	bb     r2.Box
}

// Difference returns the difference of two SDF2 objects, s0 - s1.
func Difference(s0, s1 SDF2) SDF2 {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	return &diff2{s0: s0, s1: s1, bb: s0.Bounds()}
}

func (s *diff2) Evaluate(p r2.Vec) float64 {
	return math.Max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

func (s *diff2) Bounds() r2.Box { return s.bb }
