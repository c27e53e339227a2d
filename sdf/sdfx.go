package sdf

import (
	sdfx "github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"golang.org/x/image/math/f64"
)

// FromSDF2 adapts an sdfx 2D signed distance function. The distance comes
// from Evaluate and the bounds from the function's bounding box, which is
// computed once.
func FromSDF2(s sdfx.SDF2) Generator {
	box := s.BoundingBox()
	bb := BoundingBox{MinX: box.Min.X, MaxX: box.Max.X, MinY: box.Min.Y, MaxY: box.Max.Y}
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return NewBoundSdf(s.Evaluate(v2.Vec{X: p[0], Y: p[1]}), bb)
	})
}
