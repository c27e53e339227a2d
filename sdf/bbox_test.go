package sdf

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestBoundingBoxOps(t *testing.T) {
	a := BoundingBox{MinX: -1, MaxX: 2, MinY: 0, MaxY: 3}
	b := BoundingBox{MinX: 1, MaxX: 4, MinY: -2, MaxY: 1}

	tests := []struct {
		name string
		got  BoundingBox
		want BoundingBox
	}{
		{"unify", a.Unify(b), BoundingBox{MinX: -1, MaxX: 4, MinY: -2, MaxY: 3}},
		{"intersection", a.Intersection(b), BoundingBox{MinX: 1, MaxX: 2, MinY: 0, MaxY: 1}},
		{"inverse", a.Inverse(), BoundingBox{}},
		{"difference keeps first operand", a.Difference(b), a},
		{"translate", a.Translate(1, -1), BoundingBox{MinX: 0, MaxX: 3, MinY: -1, MaxY: 2}},
		{"scale", a.Scale(2), BoundingBox{MinX: -2, MaxX: 4, MinY: 0, MaxY: 6}},
		{"scale negative", a.Scale(-1), BoundingBox{MinX: -2, MaxX: 1, MinY: -3, MaxY: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestBoundingBoxDisjointIntersectionIsEmpty(t *testing.T) {
	a := NewBoundingBox(1, 1)
	b := NewBoundingBox(1, 1).Translate(5, 0)
	got := a.Intersection(b)
	if !got.IsEmpty() {
		t.Errorf("Intersection() = %+v, want an inverted box", got)
	}
	if a.IsEmpty() {
		t.Error("IsEmpty() = true for a regular box")
	}
}

func TestBoundingBoxUnbounded(t *testing.T) {
	a := NewBoundingBox(2, 3).Translate(4, 4)
	free := a.Inverse()

	if !free.IsUnbounded() {
		t.Fatal("Inverse() is not the unbounded box")
	}
	if got := a.Intersection(free); got != a {
		t.Errorf("Intersection(unbounded) = %+v, want %+v", got, a)
	}
	if got := free.Intersection(a); got != a {
		t.Errorf("unbounded.Intersection() = %+v, want %+v", got, a)
	}
	if got := a.Unify(free); !got.IsUnbounded() {
		t.Errorf("Unify(unbounded) = %+v, want unbounded", got)
	}
	if !free.Contains(f64.Vec2{1e9, -1e9}) {
		t.Error("unbounded box must contain every point")
	}
	if got := free.Translate(3, 3); !got.IsUnbounded() {
		t.Errorf("Translate() = %+v, want unbounded", got)
	}
}

func TestBoundingBoxSize(t *testing.T) {
	b := NewBoundingBox(1.5, 2)
	if b.Width() != 3 || b.Height() != 4 {
		t.Errorf("size = %vx%v, want 3x4", b.Width(), b.Height())
	}
}

func TestBoundingBoxContains(t *testing.T) {
	b := NewBoundingBox(1, 1)
	tests := []struct {
		p    f64.Vec2
		want bool
	}{
		{f64.Vec2{0, 0}, true},
		{f64.Vec2{1, 1}, true},
		{f64.Vec2{1.01, 0}, false},
		{f64.Vec2{0, -2}, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBoundingBoxTransformRotation(t *testing.T) {
	b := BoundingBox{MinX: 0, MaxX: 2, MinY: 0, MaxY: 1}
	// Quarter turn counter-clockwise: (x, y) -> (-y, x).
	got := b.Transform(f64.Aff3{0, -1, 0, 1, 0, 0})
	want := BoundingBox{MinX: -1, MaxX: 0, MinY: 0, MaxY: 2}
	if !boxNear(got, want, 1e-12) {
		t.Errorf("Transform() = %+v, want %+v", got, want)
	}

	diag := NewBoundingBox(1, 1).Transform(f64.Aff3{math.Sqrt2 / 2, -math.Sqrt2 / 2, 0, math.Sqrt2 / 2, math.Sqrt2 / 2, 0})
	if !floatNear(diag.MaxX, math.Sqrt2, 1e-12) || !floatNear(diag.MinY, -math.Sqrt2, 1e-12) {
		t.Errorf("rotated square bounds = %+v, want +-sqrt2", diag)
	}
}

func floatNear(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func boxNear(a, b BoundingBox, eps float64) bool {
	return floatNear(a.MinX, b.MinX, eps) && floatNear(a.MaxX, b.MaxX, eps) &&
		floatNear(a.MinY, b.MinY, eps) && floatNear(a.MaxY, b.MaxY, eps)
}
