package shape

import (
	"math"

	"github.com/gogpu/shade/color"
)

var (
	meterInside  = color.NewRgb(0.05, 0.35, 0.9)
	meterOutside = color.NewRgb(0.9, 0.35, 0.05)
	meterEdge    = color.NewRgb(1, 1, 1)
)

// DistanceMeter maps a distance to a heatmap color. Inside and outside get
// different tints, contour bands repeat every scale1/20 units, and the
// brightness falls off as exp(-|d|/scale2). The zero level set is drawn as
// a one unit wide white line.
func DistanceMeter(d, scale1, scale2 float64) color.Rgb {
	tint := meterOutside
	if d < 0 {
		tint = meterInside
	}

	band := 1.0
	if period := scale1 / 20; period > 0 {
		band = 0.8 + 0.2*math.Cos(2*math.Pi*d/period)
	}

	fade := 1.0
	if scale2 > 0 {
		fade = math.Exp(-math.Abs(d) / scale2)
	}

	k := band * (0.3 + 0.7*fade)
	c := color.NewRgb(tint.Raw[0]*k, tint.Raw[1]*k, tint.Raw[2]*k)
	return color.Mix(c, meterEdge, clamp01(1-math.Abs(d)))
}
