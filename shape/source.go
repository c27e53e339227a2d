package shape

import (
	"github.com/gogpu/shade/color"
	"github.com/gogpu/shade/sdf"
)

// Source builds the shape seen at inv.Position. A scene is a Source
// composed from Fill leaves with the combinators below.
type Source func(inv Invocation) Shape

// Fill paints the generator g with c under the given id.
func Fill(g sdf.Generator, id ID, c color.Rgba) Source {
	return func(inv Invocation) Shape {
		return New(inv, id, g.Eval(inv.Position), c)
	}
}

// FillSymbol is Fill using the invocation's SymbolID.
func FillSymbol(g sdf.Generator, c color.Rgba) Source {
	return func(inv Invocation) Shape {
		return New(inv, inv.SymbolID, g.Eval(inv.Position), c)
	}
}

// UnionOf unifies the sources in painting order: each one is drawn over the
// ones before it. It panics if srcs is empty.
func UnionOf(srcs ...Source) Source {
	return fold(Unify, srcs)
}

// IntersectionOf intersects the sources in painting order. It panics if
// srcs is empty.
func IntersectionOf(srcs ...Source) Source {
	return fold(Intersection, srcs)
}

func fold(op func(Invocation, Shape, Shape) Shape, srcs []Source) Source {
	if len(srcs) == 0 {
		panic("shape: no sources")
	}
	return func(inv Invocation) Shape {
		s := srcs[0](inv)
		for _, next := range srcs[1:] {
			s = op(inv, s, next(inv))
		}
		return s
	}
}

// DifferenceOf removes b from a.
func DifferenceOf(a, b Source) Source {
	return func(inv Invocation) Shape {
		return Difference(inv, a(inv), b(inv))
	}
}

// InverseOf swaps inside and outside of src.
func InverseOf(src Source) Source {
	return func(inv Invocation) Shape {
		return Inverse(inv, src(inv))
	}
}

// ResampleOf multiplies the distance of src by k.
func ResampleOf(src Source, k float64) Source {
	return func(inv Invocation) Shape {
		return Resample(inv, src(inv), k)
	}
}

// PixelSnapOf gives src a hard pixel edge.
func PixelSnapOf(src Source) Source {
	return func(inv Invocation) Shape {
		return PixelSnap(inv, src(inv))
	}
}

// RecolorOf paints src with c.
func RecolorOf(src Source, c color.Rgba) Source {
	return func(inv Invocation) Shape {
		return Recolor(inv, src(inv), c)
	}
}
