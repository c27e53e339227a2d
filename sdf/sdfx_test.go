package sdf

import (
	"math"
	"testing"

	sdfx "github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"golang.org/x/image/math/f64"
)

// disc is a minimal sdfx.SDF2 used to exercise the adapter.
type disc struct {
	center v2.Vec
	radius float64
}

func (d disc) Evaluate(p v2.Vec) float64 {
	return math.Hypot(p.X-d.center.X, p.Y-d.center.Y) - d.radius
}

func (d disc) BoundingBox() sdfx.Box2 {
	return sdfx.Box2{
		Min: v2.Vec{X: d.center.X - d.radius, Y: d.center.Y - d.radius},
		Max: v2.Vec{X: d.center.X + d.radius, Y: d.center.Y + d.radius},
	}
}

func TestFromSDF2(t *testing.T) {
	var s sdfx.SDF2 = disc{center: v2.Vec{X: 1, Y: 2}, radius: 0.5}
	g := FromSDF2(s)

	got := g.Eval(f64.Vec2{1, 2})
	if got.Distance != -0.5 {
		t.Errorf("distance = %v, want -0.5", got.Distance)
	}
	want := BoundingBox{MinX: 0.5, MaxX: 1.5, MinY: 1.5, MaxY: 2.5}
	if got.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", got.Bounds, want)
	}

	// Adapted fields compose with native generators.
	u := Union(g, Circle(0.25)).Eval(f64.Vec2{0, 0})
	if u.Distance != -0.25 {
		t.Errorf("union distance = %v, want -0.25", u.Distance)
	}
}
