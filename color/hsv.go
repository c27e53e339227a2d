package color

import "math"

// hsvEpsilon guards the divisions at zero chroma and zero value.
const hsvEpsilon = 1e-10

// srgbToHsv is the branchless hexagonal formulation: the two step-driven
// mixes pick the max channel and the ordering of the other two.
func srgbToHsv(c [3]float64) [3]float64 {
	r, g, b := c[0], c[1], c[2]
	k := [4]float64{0, -1.0 / 3.0, 2.0 / 3.0, -1}

	p := mix4(
		[4]float64{b, g, k[3], k[2]},
		[4]float64{g, b, k[0], k[1]},
		step(b, g),
	)
	q := mix4(
		[4]float64{p[0], p[1], p[3], r},
		[4]float64{r, p[1], p[2], p[0]},
		step(p[0], r),
	)

	d := q[0] - math.Min(q[3], q[1])
	return [3]float64{
		math.Abs(q[2] + (q[3]-q[1])/(6*d+hsvEpsilon)),
		d / (q[0] + hsvEpsilon),
		q[0],
	}
}

func hsvToSrgb(c [3]float64) [3]float64 {
	h, s, v := c[0], c[1], c[2]
	k := [4]float64{1, 2.0 / 3.0, 1.0 / 3.0, 3}
	var out [3]float64
	for i := range out {
		p := math.Abs(fract(h+k[i])*6 - k[3])
		out[i] = v * mix(k[0], clamp01(p-k[0]), s)
	}
	return out
}

// step is 0 when x < edge and 1 otherwise.
func step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

// mix4 selects between a and b lane-wise; t is 0 or 1 so the endpoints are
// reproduced exactly.
func mix4(a, b [4]float64, t float64) [4]float64 {
	var out [4]float64
	for i := range out {
		out[i] = a[i]*(1-t) + b[i]*t
	}
	return out
}

func fract(x float64) float64 { return x - math.Floor(x) }

func mix(a, b, t float64) float64 { return a + (b-a)*t }

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
