package shade

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/shade/shape"
)

// FrameOption configures a Frame during creation.
//
// Example:
//
//	frame, err := shade.NewFrame(800, 600,
//	    shade.WithPixelRatio(2),
//	    shade.WithDisplayMode(shape.DisplayDistance),
//	)
type FrameOption func(*frameOptions)

type frameOptions struct {
	pixelRatio float64
	zoom       float64
	mode       shape.DisplayMode
	symbolID   shape.ID
	transform  *f64.Aff3
	format     gputypes.TextureFormat
	workers    int
	bandHeight int
}

func defaultOptions() frameOptions {
	return frameOptions{
		pixelRatio: 1,
		zoom:       1,
		mode:       shape.DisplayCoverage,
		format:     gputypes.TextureFormatRGBA8UnormSrgb,
		bandHeight: 16,
	}
}

// WithPixelRatio sets the number of device pixels per scene unit.
func WithPixelRatio(ratio float64) FrameOption {
	return func(o *frameOptions) {
		o.pixelRatio = ratio
	}
}

// WithZoom scales the antialiasing ramp. Values above 1 sharpen edges.
func WithZoom(zoom float64) FrameOption {
	return func(o *frameOptions) {
		o.zoom = zoom
	}
}

// WithDisplayMode selects between the composited color and the distance
// heatmap.
func WithDisplayMode(mode shape.DisplayMode) FrameOption {
	return func(o *frameOptions) {
		o.mode = mode
	}
}

// WithSymbolID sets the id handed to shape.FillSymbol leaves.
func WithSymbolID(id shape.ID) FrameOption {
	return func(o *frameOptions) {
		o.symbolID = id
	}
}

// WithTransform sets the pixel-to-scene transform applied to every pixel
// center. It replaces the default centered mapping.
func WithTransform(m f64.Aff3) FrameOption {
	return func(o *frameOptions) {
		o.transform = &m
	}
}

// WithColorFormat sets the format of the color output. sRGB formats store
// gamma-encoded values, other formats store linear values. Only
// TextureFormatRGBA8UnormSrgb and TextureFormatRGBA8Unorm are supported.
func WithColorFormat(format gputypes.TextureFormat) FrameOption {
	return func(o *frameOptions) {
		o.format = format
	}
}

// WithWorkers sets the number of goroutines shading the frame.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) FrameOption {
	return func(o *frameOptions) {
		o.workers = n
	}
}

// WithBandHeight sets how many rows each work item shades.
// Zero or negative gives one band per worker.
func WithBandHeight(rows int) FrameOption {
	return func(o *frameOptions) {
		o.bandHeight = rows
	}
}
