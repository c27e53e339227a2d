package shape

import (
	"github.com/gogpu/shade/color"
	"github.com/gogpu/shade/sdf"
)

// Shape is a bound distance field carrying a premultiplied color.
//
// Alpha is the coverage computed when the shape was built, and Color is
// premultiplied by it. Transforms that change Sdf rebuild the shape with
// New after undoing the premultiplication with that same coverage.
type Shape struct {
	ID    ID
	Sdf   sdf.BoundSdf
	Color Premultiplied
	Alpha float64
}

// New builds a shape from a raw straight-alpha color. The color's alpha is
// multiplied by the coverage of bs before premultiplying.
func New(inv Invocation, id ID, bs sdf.BoundSdf, c color.Rgba) Shape {
	alpha := Render(inv, bs)
	return Shape{
		ID:    id,
		Sdf:   bs,
		Color: Premultiply(c.WithAlpha(c.A() * alpha)),
		Alpha: alpha,
	}
}

// Raw returns the straight color s was built from, before coverage was
// applied. Where the coverage or color alpha is zero the color is lost and
// Raw returns transparent black.
func (s Shape) Raw() color.Rgba {
	return rawUnder(s.Color, s.Alpha)
}

// rawUnder undoes premultiplication and then removes coverage from alpha.
// Zero denominators give transparent black so no NaN reaches later blends.
func rawUnder(p Premultiplied, coverage float64) color.Rgba {
	if p.A == 0 || coverage == 0 {
		return color.Rgba{}
	}
	c := p.Unpremultiply()
	return c.WithAlpha(c.A() / coverage)
}

// Unify returns the union of two shapes with s2 painted over s1.
func Unify(inv Invocation, s1, s2 Shape) Shape {
	bs := s1.Sdf.Unify(s2.Sdf)
	return Shape{
		ID:    topID(s1, s2),
		Sdf:   bs,
		Color: Over(s1.Color, s2.Color),
		Alpha: Render(inv, bs),
	}
}

// Intersection returns the overlap of two shapes. The color is s2 painted
// over s1, with the coverage composited by Over removed and the coverage of
// the overlap applied instead.
func Intersection(inv Invocation, s1, s2 Shape) Shape {
	bs := s1.Sdf.Intersection(s2.Sdf)
	covered := s2.Alpha + (1-s2.Alpha)*s1.Alpha
	raw := rawUnder(Over(s1.Color, s2.Color), covered)
	return New(inv, topID(s1, s2), bs, raw)
}

// Difference removes s2 from s1. Only the color of s1 survives.
func Difference(inv Invocation, s1, s2 Shape) Shape {
	return New(inv, s1.ID, s1.Sdf.Difference(s2.Sdf), s1.Raw())
}

// Inverse swaps the inside and outside of s, keeping its color.
func Inverse(inv Invocation, s Shape) Shape {
	return New(inv, s.ID, s.Sdf.Inverse(), s.Raw())
}

// Resample multiplies the distance of s by k and rebuilds its coverage.
// Where s had zero coverage its color is already lost, so the result is
// transparent even if the new coverage is positive; see Recolor.
func Resample(inv Invocation, s Shape, k float64) Shape {
	return New(inv, s.ID, s.Sdf.Resample(k), s.Raw())
}

// PixelSnap quantizes the distance of s to a hard pixel edge. Like
// Resample, it cannot restore color where s had zero coverage.
func PixelSnap(inv Invocation, s Shape) Shape {
	return New(inv, s.ID, s.Sdf.PixelSnap(), s.Raw())
}

// Recolor paints s with c, keeping its id and distance field. Composed
// shapes lose their color where an operand had zero coverage, so scenes
// built from Inverse or Difference are usually recolored afterwards.
func Recolor(inv Invocation, s Shape, c color.Rgba) Shape {
	return New(inv, s.ID, s.Sdf, c)
}

// Display returns the straight color shown for s. In DisplayDistance mode
// the distance field is drawn as an opaque heatmap instead.
func (s Shape) Display(inv Invocation) color.Rgba {
	if inv.Mode == DisplayDistance {
		scale := 200 * inv.PixelRatio
		return DistanceMeter(s.Sdf.Distance, scale*inv.Zoom, scale/inv.Zoom).Opaque()
	}
	if s.Color.A == 0 {
		return color.Rgba{}
	}
	return s.Color.Unpremultiply()
}

// IDOutput returns the id buffer value of s: id/255 in red and a hard
// alpha of 1 where coverage exceeds one half.
func (s Shape) IDOutput() color.Rgba {
	var a float64
	if s.Alpha > 0.5 {
		a = 1
	}
	return color.NewRgba(float64(NewIDLayer(s.Sdf, s.ID))/255, 0, 0, a)
}
