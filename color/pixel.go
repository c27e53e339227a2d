package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ToNRGBA packs a straight sRGB color into 8-bit channels.
// Each channel is clamped to [0,1] and rounded; NaN packs to 0.
func ToNRGBA(c Srgba) stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: clampAndRound(c.Raw[0]),
		G: clampAndRound(c.Raw[1]),
		B: clampAndRound(c.Raw[2]),
		A: clampAndRound(c.Raw[3]),
	}
}

// LinearToNRGBA packs linear components into 8-bit channels without gamma
// encoding, for targets that store linear values.
func LinearToNRGBA(c Rgba) stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: clampAndRound(c.Raw[0]),
		G: clampAndRound(c.Raw[1]),
		B: clampAndRound(c.Raw[2]),
		A: clampAndRound(c.Raw[3]),
	}
}

// FromNRGBA unpacks an 8-bit straight color.
func FromNRGBA(c stdcolor.NRGBA) Srgba {
	return NewSrgba(
		float64(c.R)/255,
		float64(c.G)/255,
		float64(c.B)/255,
		float64(c.A)/255,
	)
}

// clampAndRound clamps a channel to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is
// optional) into an sRGB color. Colors without an alpha suffix are opaque.
func ParseHex(s string) (Srgba, error) {
	hex := strings.TrimPrefix(s, "#")
	alpha := 1.0
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Srgba{}, fmt.Errorf("color: invalid alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Srgba{}, err
	}
	return NewSrgba(c.R, c.G, c.B, alpha), nil
}
