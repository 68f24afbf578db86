package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// NewBox2 creates a 2d box with a given center and size.
func NewBox2(center, size r2.Vec) Box {
	half := r2.Scale(0.5, size)
	return Box{r2.Sub(center, half), r2.Add(center, half)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Add(a.Min, r2.Scale(0.5, a.Size()))
}

// Enlarge returns a new 2d box enlarged by a size vector.
func (a Box) Enlarge(v r2.Vec) Box {
	v = r2.Scale(0.5, v)
	return Box{r2.Sub(a.Min, v), r2.Add(a.Max, v)}
}

// Square returns the smallest square box with the same center that contains a.
func (a Box) Square() Box {
	sz := a.Size()
	side := sz.X
	if sz.Y > side {
		side = sz.Y
	}
	return NewBox2(a.Center(), Elem(side))
}
