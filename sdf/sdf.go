// Package sdf implements signed distance field algebra for 2D shapes.
//
// Distances are negative inside a shape, positive outside and zero on its
// boundary. Union takes the closer surface (min), intersection the farther
// one (max). These identities are exact for primitive fields only; once an
// input is itself a union or intersection the result is a conservative
// approximation of the Euclidean distance, not an exact one.
//
// A BoundSdf pairs a distance with a BoundingBox that conservatively
// contains the region where the distance is <= 0. Every operation updates
// both halves in lockstep.
package sdf

import "math"

// Sdf is a signed distance without bounds.
type Sdf struct {
	Distance float64
}

// Inverse swaps inside and outside.
func (a Sdf) Inverse() Sdf {
	return Sdf{Distance: -a.Distance}
}

// Unify returns the union of both fields.
func (a Sdf) Unify(b Sdf) Sdf {
	return Sdf{Distance: math.Min(a.Distance, b.Distance)}
}

// Intersection returns the intersection of both fields.
func (a Sdf) Intersection(b Sdf) Sdf {
	return Sdf{Distance: math.Max(a.Distance, b.Distance)}
}

// Difference subtracts b from a.
func (a Sdf) Difference(b Sdf) Sdf {
	return a.Intersection(b.Inverse())
}

// BoundSdf is a signed distance with a conservative bounding box.
type BoundSdf struct {
	Distance float64
	Bounds   BoundingBox
}

// NewBoundSdf creates a BoundSdf.
func NewBoundSdf(distance float64, bounds BoundingBox) BoundSdf {
	return BoundSdf{Distance: distance, Bounds: bounds}
}

// Sdf returns the distance half.
func (a BoundSdf) Sdf() Sdf {
	return Sdf{Distance: a.Distance}
}

func combine(s Sdf, bb BoundingBox) BoundSdf {
	return BoundSdf{Distance: s.Distance, Bounds: bb}
}

// Inverse swaps inside and outside. The bounds become the all-zero box.
func (a BoundSdf) Inverse() BoundSdf {
	return combine(a.Sdf().Inverse(), a.Bounds.Inverse())
}

// Unify returns the union of both shapes.
func (a BoundSdf) Unify(b BoundSdf) BoundSdf {
	return combine(a.Sdf().Unify(b.Sdf()), a.Bounds.Unify(b.Bounds))
}

// Intersection returns the intersection of both shapes.
func (a BoundSdf) Intersection(b BoundSdf) BoundSdf {
	return combine(a.Sdf().Intersection(b.Sdf()), a.Bounds.Intersection(b.Bounds))
}

// Difference subtracts b from a. The bounds stay those of a.
func (a BoundSdf) Difference(b BoundSdf) BoundSdf {
	return combine(a.Sdf().Difference(b.Sdf()), a.Bounds.Difference(b.Bounds))
}

// Resample multiplies the distance by k. Bounds are in world space already
// and are left unchanged.
func (a BoundSdf) Resample(k float64) BoundSdf {
	return BoundSdf{Distance: a.Distance * k, Bounds: a.Bounds}
}

// PixelSnap quantizes the distance to floor(d)+0.5, producing a hard edge
// without antialiasing.
func (a BoundSdf) PixelSnap() BoundSdf {
	return BoundSdf{Distance: math.Floor(a.Distance) + 0.5, Bounds: a.Bounds}
}
