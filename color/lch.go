package color

import "math"

// rgbToXyzMatrix converts linear sRGB primaries to CIE XYZ (D65).
var rgbToXyzMatrix = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

// xyzToRgbMatrix is the numeric inverse of rgbToXyzMatrix.
var xyzToRgbMatrix = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// whiteD65 is the reference white used to normalize XYZ before L*a*b*.
var whiteD65 = [3]float64{0.95047, 1.0, 1.08883}

const (
	labForwardBreak = 0.00885645 // (6/29)^3
	labInverseBreak = 0.20689655 // 6/29
	labSlope        = 7.787037   // (29/6)^2 / 3
	labInverseSlope = 0.1284185  // 3 * (6/29)^2
	labOffset       = 16.0 / 116.0
)

func mulMatrix(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func rgbToXyz(rgb [3]float64) [3]float64 { return mulMatrix(rgbToXyzMatrix, rgb) }

func xyzToRgb(xyz [3]float64) [3]float64 { return mulMatrix(xyzToRgbMatrix, xyz) }

func labF(t float64) float64 {
	if t <= labForwardBreak {
		return labSlope*t + labOffset
	}
	return math.Cbrt(t)
}

func labFInverse(t float64) float64 {
	if t <= labInverseBreak {
		return labInverseSlope * (t - labOffset)
	}
	return t * t * t
}

func xyzToLab(xyz [3]float64) [3]float64 {
	fx := labF(xyz[0] / whiteD65[0])
	fy := labF(xyz[1] / whiteD65[1])
	fz := labF(xyz[2] / whiteD65[2])
	return [3]float64{
		math.Max(0, 116*fy-16),
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

func labToXyz(lab [3]float64) [3]float64 {
	fy := (lab[0] + 16) / 116
	return [3]float64{
		whiteD65[0] * labFInverse(fy+lab[1]/500),
		whiteD65[1] * labFInverse(fy),
		whiteD65[2] * labFInverse(fy-lab[2]/200),
	}
}

// labToLch converts to polar form. The arctangent takes (b, a) in that order.
func labToLch(lab [3]float64) [3]float64 {
	return [3]float64{lab[0], math.Hypot(lab[1], lab[2]), math.Atan2(lab[2], lab[1])}
}

func lchToLab(lch [3]float64) [3]float64 {
	return [3]float64{lch[0], math.Cos(lch[2]) * lch[1], math.Sin(lch[2]) * lch[1]}
}
