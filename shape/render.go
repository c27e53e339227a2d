package shape

import (
	"github.com/gogpu/shade/sdf"
)

// Render returns the antialiasing coverage of bs: a one pixel wide linear
// ramp centered on the zero level set, clamped to [0, 1].
func Render(inv Invocation, bs sdf.BoundSdf) float64 {
	return clamp01((-bs.Distance*inv.PixelRatio + 0.5) * inv.Zoom)
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
