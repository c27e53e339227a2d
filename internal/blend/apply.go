package blend

import (
	"math"

	"github.com/gogpu/gputypes"
)

// Apply evaluates a blend state the way a color target would: the color
// component combines the RGB channels and the alpha component combines A.
// constant is the blend constant used by the Constant factors.
func Apply(state gputypes.BlendState, src, dst, constant gputypes.Color) gputypes.Color {
	s := [4]float64{src.R, src.G, src.B, src.A}
	d := [4]float64{dst.R, dst.G, dst.B, dst.A}
	k := [4]float64{constant.R, constant.G, constant.B, constant.A}

	var out [4]float64
	for i := range 3 {
		out[i] = equation(state.Color, s, d, k, i)
	}
	out[3] = equation(state.Alpha, s, d, k, 3)
	return gputypes.Color{R: out[0], G: out[1], B: out[2], A: out[3]}
}

// equation computes one channel of a blend component.
func equation(c gputypes.BlendComponent, s, d, k [4]float64, ch int) float64 {
	switch c.Operation {
	case gputypes.BlendOperationMin:
		return math.Min(s[ch], d[ch])
	case gputypes.BlendOperationMax:
		return math.Max(s[ch], d[ch])
	}

	sv := s[ch] * factor(c.SrcFactor, s, d, k, ch)
	dv := d[ch] * factor(c.DstFactor, s, d, k, ch)

	switch c.Operation {
	case gputypes.BlendOperationSubtract:
		return sv - dv
	case gputypes.BlendOperationReverseSubtract:
		return dv - sv
	default:
		return sv + dv
	}
}

// factor returns the multiplier for channel ch. Color factors read the
// channel itself, alpha factors read the alpha channel.
func factor(f gputypes.BlendFactor, s, d, k [4]float64, ch int) float64 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorSrc:
		return s[ch]
	case gputypes.BlendFactorOneMinusSrc:
		return 1 - s[ch]
	case gputypes.BlendFactorSrcAlpha:
		return s[3]
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - s[3]
	case gputypes.BlendFactorDst:
		return d[ch]
	case gputypes.BlendFactorOneMinusDst:
		return 1 - d[ch]
	case gputypes.BlendFactorDstAlpha:
		return d[3]
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - d[3]
	case gputypes.BlendFactorSrcAlphaSaturated:
		if ch == 3 {
			return 1
		}
		return math.Min(s[3], 1-d[3])
	case gputypes.BlendFactorConstant:
		return k[ch]
	case gputypes.BlendFactorOneMinusConstant:
		return 1 - k[ch]
	default: // One and Undefined
		return 1
	}
}
