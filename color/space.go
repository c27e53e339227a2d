// Package color provides color space types and conversions for shade.
//
// Every color space is a zero-size tag type implementing [Space]: a pair of
// conversions to and from linear RGB. Conversions between any two spaces
// route through linear RGB, so adding a space only requires that pair.
//
// Channel ranges:
//   - Rgb, Srgb: [0,1] per channel (values outside pass through unclamped)
//   - Hsv: hue, saturation and value in [0,1]
//   - Lch: L in [0,100], C >= 0, h in (-pi, pi] radians
//
// Alpha is always linear and never gamma-encoded.
package color

// Space is implemented by color space tags.
//
// ToRgb converts raw channels of the space to linear RGB, FromRgb converts
// linear RGB back. Implementations must be stateless; the zero value is used.
type Space interface {
	ToRgb(raw [3]float64) [3]float64
	FromRgb(rgb [3]float64) [3]float64
}

// LinearRGB is the linear-light RGB space. It is the conversion hub.
type LinearRGB struct{}

// ToRgb implements Space.
func (LinearRGB) ToRgb(raw [3]float64) [3]float64 { return raw }

// FromRgb implements Space.
func (LinearRGB) FromRgb(rgb [3]float64) [3]float64 { return rgb }

// SRGB is the gamma-encoded sRGB space.
type SRGB struct{}

// ToRgb implements Space.
func (SRGB) ToRgb(raw [3]float64) [3]float64 {
	return [3]float64{
		ChannelSrgbToRgb(raw[0]),
		ChannelSrgbToRgb(raw[1]),
		ChannelSrgbToRgb(raw[2]),
	}
}

// FromRgb implements Space.
func (SRGB) FromRgb(rgb [3]float64) [3]float64 {
	return [3]float64{
		ChannelRgbToSrgb(rgb[0]),
		ChannelRgbToSrgb(rgb[1]),
		ChannelRgbToSrgb(rgb[2]),
	}
}

// HSV is the hue/saturation/value space defined over sRGB.
type HSV struct{}

// ToRgb implements Space.
func (HSV) ToRgb(raw [3]float64) [3]float64 {
	return SRGB{}.ToRgb(hsvToSrgb(raw))
}

// FromRgb implements Space.
func (HSV) FromRgb(rgb [3]float64) [3]float64 {
	return srgbToHsv(SRGB{}.FromRgb(rgb))
}

// LCH is the cylindrical form of CIE L*a*b* under the D65 white point.
type LCH struct{}

// ToRgb implements Space.
func (LCH) ToRgb(raw [3]float64) [3]float64 {
	return xyzToRgb(labToXyz(lchToLab(raw)))
}

// FromRgb implements Space.
func (LCH) FromRgb(rgb [3]float64) [3]float64 {
	return labToLch(xyzToLab(rgbToXyz(rgb)))
}
