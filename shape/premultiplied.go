package shape

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/shade/color"
	"github.com/gogpu/shade/internal/blend"
)

// Premultiplied is a linear RGBA color whose RGB channels are already
// scaled by alpha.
type Premultiplied struct {
	R, G, B, A float64
}

// Premultiply scales the RGB channels of c by its alpha.
func Premultiply(c color.Rgba) Premultiplied {
	a := c.A()
	return Premultiplied{R: c.Raw[0] * a, G: c.Raw[1] * a, B: c.Raw[2] * a, A: a}
}

// Unpremultiply divides the RGB channels by alpha. A zero alpha yields
// non-finite channels; such colors carry zero coverage.
func (p Premultiplied) Unpremultiply() color.Rgba {
	return color.NewRgba(p.R/p.A, p.G/p.A, p.B/p.A, p.A)
}

// Over paints fg on top of bg: fg + (1-fg.A)*bg.
func Over(bg, fg Premultiplied) Premultiplied {
	return fromGPU(blend.SourceOver(fg.gpu(), bg.gpu()))
}

func (p Premultiplied) gpu() gputypes.Color {
	return gputypes.Color{R: p.R, G: p.G, B: p.B, A: p.A}
}

func fromGPU(c gputypes.Color) Premultiplied {
	return Premultiplied{R: c.R, G: c.G, B: c.B, A: c.A}
}
