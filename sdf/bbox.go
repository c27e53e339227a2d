package sdf

import (
	"math"

	"golang.org/x/image/math/f64"
)

// BoundingBox is an axis-aligned rectangle.
//
// The all-zero box is the conventional "no reliable bound" value produced
// by Inverse: it stands for the whole plane. Unify absorbs into it and
// Intersection treats it as the identity, which keeps every result a
// conservative bound. Enclosure is a contract of the producing operation and
// is not checked here.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBoundingBox returns the box spanning [-w,w] x [-h,h].
func NewBoundingBox(w, h float64) BoundingBox {
	return BoundingBox{MinX: -w, MaxX: w, MinY: -h, MaxY: h}
}

// IsUnbounded reports whether b is the all-zero "no reliable bound" box.
func (b BoundingBox) IsUnbounded() bool {
	return b == BoundingBox{}
}

// Unify returns the smallest box containing both boxes.
func (b BoundingBox) Unify(o BoundingBox) BoundingBox {
	if b.IsUnbounded() || o.IsUnbounded() {
		return BoundingBox{}
	}
	return BoundingBox{
		MinX: math.Min(b.MinX, o.MinX),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Intersection returns the overlap of both boxes. Disjoint boxes produce an
// inverted box; see IsEmpty.
func (b BoundingBox) Intersection(o BoundingBox) BoundingBox {
	switch {
	case b.IsUnbounded():
		return o
	case o.IsUnbounded():
		return b
	}
	return BoundingBox{
		MinX: math.Max(b.MinX, o.MinX),
		MaxX: math.Min(b.MaxX, o.MaxX),
		MinY: math.Max(b.MinY, o.MinY),
		MaxY: math.Min(b.MaxY, o.MaxY),
	}
}

// Inverse returns the all-zero box. The true complement is unbounded.
func (b BoundingBox) Inverse() BoundingBox {
	return BoundingBox{}
}

// Difference returns b unchanged. Subtracting o can only shrink the region,
// so b stays a valid bound; it is not tightened.
func (b BoundingBox) Difference(o BoundingBox) BoundingBox {
	return b
}

// Width returns MaxX-MinX.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// IsEmpty reports whether the box is inverted on either axis.
func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Contains reports whether p lies inside the box, edges included. The
// unbounded box contains every point.
func (b BoundingBox) Contains(p f64.Vec2) bool {
	if b.IsUnbounded() {
		return true
	}
	return p[0] >= b.MinX && p[0] <= b.MaxX && p[1] >= b.MinY && p[1] <= b.MaxY
}

// Translate moves the box by (dx, dy).
func (b BoundingBox) Translate(dx, dy float64) BoundingBox {
	if b.IsUnbounded() {
		return b
	}
	return BoundingBox{MinX: b.MinX + dx, MaxX: b.MaxX + dx, MinY: b.MinY + dy, MaxY: b.MaxY + dy}
}

// Scale multiplies every coordinate by k. A negative k swaps the edges so
// the result stays ordered.
func (b BoundingBox) Scale(k float64) BoundingBox {
	out := BoundingBox{MinX: b.MinX * k, MaxX: b.MaxX * k, MinY: b.MinY * k, MaxY: b.MaxY * k}
	if k < 0 {
		out.MinX, out.MaxX = out.MaxX, out.MinX
		out.MinY, out.MaxY = out.MaxY, out.MinY
	}
	return out
}

// Transform returns the axis-aligned box of the four transformed corners,
// which conservatively contains the transformed rectangle.
func (b BoundingBox) Transform(m f64.Aff3) BoundingBox {
	if b.IsUnbounded() {
		return b
	}
	corners := [4]f64.Vec2{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MinX, b.MaxY},
		{b.MaxX, b.MaxY},
	}
	out := BoundingBox{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, c := range corners {
		p := apply(m, c)
		out.MinX = math.Min(out.MinX, p[0])
		out.MaxX = math.Max(out.MaxX, p[0])
		out.MinY = math.Min(out.MinY, p[1])
		out.MaxY = math.Max(out.MaxY, p[1])
	}
	return out
}

// apply maps p through the affine matrix m.
func apply(m f64.Aff3, p f64.Vec2) f64.Vec2 {
	return f64.Vec2{
		m[0]*p[0] + m[1]*p[1] + m[2],
		m[3]*p[0] + m[4]*p[1] + m[5],
	}
}
