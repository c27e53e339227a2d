package sdf

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Generator produces the BoundSdf of a shape at a position in the shape's
// local space.
type Generator interface {
	Eval(p f64.Vec2) BoundSdf
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(p f64.Vec2) BoundSdf

// Eval implements Generator.
func (f GeneratorFunc) Eval(p f64.Vec2) BoundSdf { return f(p) }

// planeDistance is the distance reported everywhere inside Plane.
const planeDistance = -math.MaxFloat32

func length(x, y float64) float64 { return math.Hypot(x, y) }

// Plane covers the whole plane.
func Plane() Generator {
	return GeneratorFunc(func(f64.Vec2) BoundSdf {
		return NewBoundSdf(planeDistance, BoundingBox{})
	})
}

// HalfPlane covers every point with y <= 0.
func HalfPlane() Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return NewBoundSdf(p[1], BoundingBox{})
	})
}

// PlaneAngle covers the wedge of the given opening angle (radians) that is
// centered on the positive y axis with its apex at the origin.
func PlaneAngle(angle float64) Generator {
	sin, cos := math.Sincos(angle / 2)
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		d := math.Abs(p[0])*cos - p[1]*sin + 0.5
		return NewBoundSdf(d, BoundingBox{})
	})
}

// Line is a horizontal band of half-width width through the origin. It is
// infinite along x, so it reports no reliable bound.
func Line(width float64) Generator {
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return NewBoundSdf(math.Abs(p[1])-width, BoundingBox{})
	})
}

// Circle is a disc of the given radius centered at the origin.
func Circle(radius float64) Generator {
	bb := NewBoundingBox(radius, radius)
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return NewBoundSdf(length(p[0], p[1])-radius, bb)
	})
}

// Ellipse is an axis-aligned ellipse centered at the origin. Its field is
// the normalized implicit equation, not a Euclidean distance.
func Ellipse(rx, ry float64) Generator {
	a2, b2 := rx*rx, ry*ry
	bb := NewBoundingBox(rx, ry)
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		px2, py2 := p[0]*p[0], p[1]*p[1]
		d := (b2*px2 + a2*py2 - a2*b2) / (a2 * b2)
		return NewBoundSdf(d, bb)
	})
}

// Rect is a w x h rectangle centered at the origin.
func Rect(w, h float64) Generator {
	hw, hh := w/2, h/2
	bb := NewBoundingBox(hw, hh)
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		return NewBoundSdf(boxDistance(p, hw, hh), bb)
	})
}

func boxDistance(p f64.Vec2, hw, hh float64) float64 {
	dx := math.Abs(p[0]) - hw
	dy := math.Abs(p[1]) - hh
	inside := math.Min(math.Max(dx, dy), 0)
	outside := length(math.Max(dx, 0), math.Max(dy, 0))
	return inside + outside
}

// RoundedRect is a w x h rectangle centered at the origin with an
// individual radius per corner (y grows upwards).
func RoundedRect(w, h, topLeft, topRight, bottomLeft, bottomRight float64) Generator {
	hw, hh := w/2, h/2
	bb := NewBoundingBox(hw, hh)
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		x, y := p[0], p[1]
		var d float64
		switch {
		case x < -hw+topLeft && y > hh-topLeft:
			d = length(x+hw-topLeft, y-hh+topLeft) - topLeft
		case x > hw-topRight && y > hh-topRight:
			d = length(x-hw+topRight, y-hh+topRight) - topRight
		case x < -hw+bottomLeft && y < -hh+bottomLeft:
			d = length(x+hw-bottomLeft, y+hh-bottomLeft) - bottomLeft
		case x > hw-bottomRight && y < -hh+bottomRight:
			d = length(x-hw+bottomRight, y+hh-bottomRight) - bottomRight
		default:
			d = boxDistance(p, hw, hh)
		}
		return NewBoundSdf(d, bb)
	})
}

// Triangle is an isosceles triangle with its base of width w on the x axis
// and its apex at (0, h).
func Triangle(w, h float64) Generator {
	n := length(h, w/2)
	nx, ny := h/n, (w/2)/n
	bb := BoundingBox{MinX: -w / 2, MaxX: w / 2, MinY: 0, MaxY: h}
	return GeneratorFunc(func(p f64.Vec2) BoundSdf {
		d := math.Max(math.Abs(p[0])*nx+p[1]*ny-h*ny, -p[1])
		return NewBoundSdf(d, bb)
	})
}
