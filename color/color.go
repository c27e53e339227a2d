package color

// Color is an opaque color with three raw channels in space S.
type Color[S Space] struct {
	Raw [3]float64
}

// Alpha is a color with three raw channels in space S plus a linear alpha
// channel stored last.
type Alpha[S Space] struct {
	Raw [4]float64
}

// Opaque color spaces.
type (
	Rgb  = Color[LinearRGB]
	Srgb = Color[SRGB]
	Hsv  = Color[HSV]
	Lch  = Color[LCH]
)

// Alpha-carrying color spaces.
type (
	Rgba  = Alpha[LinearRGB]
	Srgba = Alpha[SRGB]
	Hsva  = Alpha[HSV]
	Lcha  = Alpha[LCH]
)

// NewRgb creates a linear RGB color.
func NewRgb(r, g, b float64) Rgb { return Rgb{Raw: [3]float64{r, g, b}} }

// NewRgba creates a linear RGB color with alpha.
func NewRgba(r, g, b, a float64) Rgba { return Rgba{Raw: [4]float64{r, g, b, a}} }

// NewSrgb creates an sRGB color.
func NewSrgb(r, g, b float64) Srgb { return Srgb{Raw: [3]float64{r, g, b}} }

// NewSrgba creates an sRGB color with alpha.
func NewSrgba(r, g, b, a float64) Srgba { return Srgba{Raw: [4]float64{r, g, b, a}} }

// NewHsv creates an HSV color. All channels are in [0,1].
func NewHsv(h, s, v float64) Hsv { return Hsv{Raw: [3]float64{h, s, v}} }

// NewHsva creates an HSV color with alpha.
func NewHsva(h, s, v, a float64) Hsva { return Hsva{Raw: [4]float64{h, s, v, a}} }

// NewLch creates an Lch color. Hue is in radians.
func NewLch(l, c, h float64) Lch { return Lch{Raw: [3]float64{l, c, h}} }

// NewLcha creates an Lch color with alpha.
func NewLcha(l, c, h, a float64) Lcha { return Lcha{Raw: [4]float64{l, c, h, a}} }

// WithAlpha attaches an alpha channel.
func (c Color[S]) WithAlpha(a float64) Alpha[S] {
	return Alpha[S]{Raw: [4]float64{c.Raw[0], c.Raw[1], c.Raw[2], a}}
}

// Opaque attaches a fully opaque alpha channel.
func (c Color[S]) Opaque() Alpha[S] { return c.WithAlpha(1) }

// Color drops the alpha channel.
func (c Alpha[S]) Color() Color[S] {
	return Color[S]{Raw: [3]float64{c.Raw[0], c.Raw[1], c.Raw[2]}}
}

// A returns the alpha channel.
func (c Alpha[S]) A() float64 { return c.Raw[3] }

// WithAlpha returns a copy with the alpha channel replaced.
func (c Alpha[S]) WithAlpha(a float64) Alpha[S] {
	c.Raw[3] = a
	return c
}

// Convert converts a color between spaces through linear RGB.
func Convert[To, From Space](c Color[From]) Color[To] {
	if same, ok := any(c).(Color[To]); ok {
		return same
	}
	var from From
	var to To
	return Color[To]{Raw: to.FromRgb(from.ToRgb(c.Raw))}
}

// ConvertAlpha converts a color with alpha between spaces. Alpha passes
// through unchanged.
func ConvertAlpha[To, From Space](c Alpha[From]) Alpha[To] {
	return Convert[To](c.Color()).WithAlpha(c.Raw[3])
}

// ToRgb converts any color to linear RGB.
func ToRgb[S Space](c Color[S]) Rgb { return Convert[LinearRGB](c) }

// ToSrgb converts any color to sRGB.
func ToSrgb[S Space](c Color[S]) Srgb { return Convert[SRGB](c) }

// ToHsv converts any color to HSV.
func ToHsv[S Space](c Color[S]) Hsv { return Convert[HSV](c) }

// ToLch converts any color to Lch.
func ToLch[S Space](c Color[S]) Lch { return Convert[LCH](c) }

// ToRgba converts any color with alpha to linear RGB.
func ToRgba[S Space](c Alpha[S]) Rgba { return ConvertAlpha[LinearRGB](c) }

// ToSrgba converts any color with alpha to sRGB.
func ToSrgba[S Space](c Alpha[S]) Srgba { return ConvertAlpha[SRGB](c) }

// ToHsva converts any color with alpha to HSV.
func ToHsva[S Space](c Alpha[S]) Hsva { return ConvertAlpha[HSV](c) }

// ToLcha converts any color with alpha to Lch.
func ToLcha[S Space](c Alpha[S]) Lcha { return ConvertAlpha[LCH](c) }

// Mix linearly interpolates the raw channels of two colors in their own
// space. It is not perceptual: mixing two Srgb values mixes encoded values.
func Mix[S Space](a, b Color[S], t float64) Color[S] {
	var out Color[S]
	for i := range out.Raw {
		out.Raw[i] = a.Raw[i] + (b.Raw[i]-a.Raw[i])*t
	}
	return out
}

// MixAlpha is Mix including the alpha channel.
func MixAlpha[S Space](a, b Alpha[S], t float64) Alpha[S] {
	var out Alpha[S]
	for i := range out.Raw {
		out.Raw[i] = a.Raw[i] + (b.Raw[i]-a.Raw[i])*t
	}
	return out
}

// Rec. 709 channel weights for the relative luminance of linear RGB.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Luminance returns the relative luminance of a linear RGB color.
func Luminance(c Rgb) float64 {
	return c.Raw[0]*LumaR + c.Raw[1]*LumaG + c.Raw[2]*LumaB
}
