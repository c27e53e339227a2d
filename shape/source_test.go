package shape

import (
	"testing"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/shade/sdf"
)

func TestFill(t *testing.T) {
	src := Fill(sdf.Circle(1), 5, red)
	inv := DefaultInvocation()

	tests := []struct {
		name      string
		p         f64.Vec2
		wantAlpha float64
		wantID    ID
	}{
		{"center", f64.Vec2{0, 0}, 1, 5},
		{"boundary", f64.Vec2{1, 0}, 0.5, 5},
		{"outside", f64.Vec2{3, 0}, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := src(inv.At(tt.p))
			if !floatNear(s.Alpha, tt.wantAlpha, 1e-12) {
				t.Errorf("Alpha = %v, want %v", s.Alpha, tt.wantAlpha)
			}
			if s.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", s.ID, tt.wantID)
			}
		})
	}
}

func TestFillSymbol(t *testing.T) {
	inv := DefaultInvocation()
	inv.SymbolID = 42
	if got := FillSymbol(sdf.Circle(1), red)(inv).ID; got != 42 {
		t.Errorf("ID = %d, want 42", got)
	}
}

func TestUnionOf(t *testing.T) {
	left := Fill(sdf.Translate(sdf.Circle(1), -0.5, 0), 1, red)
	right := Fill(sdf.Translate(sdf.Circle(1), 0.5, 0), 2, blue)
	scene := UnionOf(left, right)
	inv := DefaultInvocation()

	tests := []struct {
		name   string
		p      f64.Vec2
		wantID ID
		want   Premultiplied
	}{
		{"overlap shows the later source", f64.Vec2{0, 0}, 2, Premultiply(blue)},
		{"left only", f64.Vec2{-1, 0}, 1, Premultiply(red)},
		{"right only", f64.Vec2{1, 0}, 2, Premultiply(blue)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene(inv.At(tt.p))
			if s.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", s.ID, tt.wantID)
			}
			if !premultNear(s.Color, tt.want, 1e-12) {
				t.Errorf("Color = %+v, want %+v", s.Color, tt.want)
			}
		})
	}

	if got := scene(inv).Sdf.Bounds; got != (sdf.BoundingBox{MinX: -1.5, MaxX: 1.5, MinY: -1, MaxY: 1}) {
		t.Errorf("Bounds = %+v", got)
	}
}

func TestUnionOfSingle(t *testing.T) {
	inv := DefaultInvocation()
	src := Fill(sdf.Circle(1), 3, red)
	if got, want := UnionOf(src)(inv), src(inv); got != want {
		t.Errorf("UnionOf(src) = %+v, want %+v", got, want)
	}
}

func TestUnionOfEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("UnionOf() with no sources did not panic")
		}
	}()
	UnionOf()
}

func TestIntersectionOf(t *testing.T) {
	scene := IntersectionOf(
		Fill(sdf.Translate(sdf.Circle(1), -0.5, 0), 1, red),
		Fill(sdf.Translate(sdf.Circle(1), 0.5, 0), 2, blue),
	)
	inv := DefaultInvocation()

	s := scene(inv)
	if !floatNear(s.Sdf.Distance, -0.5, 1e-12) {
		t.Errorf("Distance at origin = %v, want -0.5", s.Sdf.Distance)
	}
	if s := scene(inv.At(f64.Vec2{-1.2, 0})); s.Alpha != 0 {
		t.Errorf("Alpha outside the overlap = %v, want 0", s.Alpha)
	}
}

func TestDifferenceAndRecolor(t *testing.T) {
	ring := DifferenceOf(
		Fill(sdf.Circle(2), 1, red),
		Fill(sdf.Circle(1), 2, blue),
	)
	inv := DefaultInvocation()

	if s := ring(inv); s.Alpha != 0 {
		t.Errorf("Alpha in the hole = %v, want 0", s.Alpha)
	}
	s := ring(inv.At(f64.Vec2{1.5, 0}))
	if s.Alpha != 1 || s.ID != 1 {
		t.Errorf("ring body Alpha = %v ID = %d, want 1 and 1", s.Alpha, s.ID)
	}
	if !premultNear(s.Color, Premultiply(red), 1e-12) {
		t.Errorf("ring body Color = %+v, want red", s.Color)
	}

	outside := RecolorOf(InverseOf(Fill(sdf.Circle(1), 3, red)), blue)
	if s := outside(inv.At(f64.Vec2{4, 0})); !premultNear(s.Color, Premultiply(blue), 1e-12) {
		t.Errorf("recolored inverse Color = %+v, want blue", s.Color)
	}
}

func TestResampleAndPixelSnapOf(t *testing.T) {
	inv := DefaultInvocation().At(f64.Vec2{1.2, 0})
	src := Fill(sdf.Circle(1), 1, red)

	// d = 0.2 resampled by 0.5 gives 0.1.
	if got := ResampleOf(src, 0.5)(inv).Alpha; !floatNear(got, 0.4, 1e-12) {
		t.Errorf("ResampleOf Alpha = %v, want 0.4", got)
	}
	if got := PixelSnapOf(src)(inv).Alpha; got != 0 {
		t.Errorf("PixelSnapOf Alpha = %v, want 0", got)
	}
}
