package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestPolar(t *testing.T) {
	p := PolarToXY(2, math.Pi/2)
	if !EqualWithin(p, r2.Vec{X: 0, Y: 2}, 1e-12) {
		t.Errorf("got %v", p)
	}
	p = Pol{R: 3, Theta: math.Pi}.PolarToCartesian()
	if !EqualWithin(p, r2.Vec{X: -3}, 1e-12) {
		t.Errorf("got %v", p)
	}
}

func TestSetAndBox(t *testing.T) {
	s := Set{{X: 1, Y: -2}, {X: -4, Y: 3}, {X: 0, Y: 0}}
	if s.Min() != (r2.Vec{X: -4, Y: -2}) || s.Max() != (r2.Vec{X: 1, Y: 3}) {
		t.Errorf("min %v max %v", s.Min(), s.Max())
	}
	r := s.Reversed()
	if r[0] != s[2] || r[2] != s[0] {
		t.Errorf("reversed %v", r)
	}
	b := Box{Min: s.Min(), Max: s.Max()}.Square()
	if !EqualWithin(b.Min, r2.Vec{X: -4, Y: -2}, 1e-12) || !EqualWithin(b.Max, r2.Vec{X: 1, Y: 3}, 1e-12) {
		t.Errorf("square box %v", b)
	}
	if c := (Box{Min: r2.Vec{}, Max: r2.Vec{X: 4, Y: 2}}).Square(); c.Min.Y != -1 || c.Max.Y != 3 {
		t.Errorf("square of wide box %v", c)
	}
	if got := b.Enlarge(Elem(2)).Size(); got != (r2.Vec{X: 7, Y: 7}) {
		t.Errorf("enlarged size %v", got)
	}
}
