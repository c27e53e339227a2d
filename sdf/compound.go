package sdf

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Union combines two generators with BoundSdf.Unify.
func Union(a, b Generator) Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return a.Eval(p).Unify(b.Eval(p))
	})
}

// Intersection combines two generators with BoundSdf.Intersection.
func Intersection(a, b Generator) Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return a.Eval(p).Intersection(b.Eval(p))
	})
}

// Difference subtracts b from a.
func Difference(a, b Generator) Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return a.Eval(p).Difference(b.Eval(p))
	})
}

// Inverse swaps the inside and outside of g.
func Inverse(g Generator) Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return g.Eval(p).Inverse()
	})
}

// Translate moves g by (dx, dy).
func Translate(g Generator, dx, dy float64) Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		s := g.Eval(f64.Vec2{p[0] - dx, p[1] - dy})
		s.Bounds = s.Bounds.Translate(dx, dy)
		return s
	})
}

// Rotate rotates g counter-clockwise by angle radians around the origin.
// The bounds become the axis-aligned box of the rotated bounds.
func Rotate(g Generator, angle float64) Generator {
	sin, cos := math.Sincos(angle)
	forward := f64.Aff3{cos, -sin, 0, sin, cos, 0}
	backward := f64.Aff3{cos, sin, 0, -sin, cos, 0}
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		s := g.Eval(apply(backward, p))
		s.Bounds = s.Bounds.Transform(forward)
		return s
	})
}

// Scale scales g uniformly by k around the origin. The child is evaluated
// in its own space, its distance is resampled back by k and its bounds are
// scaled into the parent's space.
func Scale(g Generator, k float64) Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		s := g.Eval(f64.Vec2{p[0] / k, p[1] / k})
		s.Bounds = s.Bounds.Scale(k)
		return s.Resample(k)
	})
}

// PixelSnap quantizes the distance of g for hard, aliased edges.
func PixelSnap(g Generator) Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return g.Eval(p).PixelSnap()
	})
}
