package shade

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"time"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/shade/color"
	"github.com/gogpu/shade/internal/parallel"
	"github.com/gogpu/shade/shape"
)

// Errors returned by NewFrame.
var (
	// ErrInvalidSize is returned when the width or height is not positive.
	ErrInvalidSize = errors.New("shade: invalid frame size")

	// ErrInvalidOption is returned for a non-positive pixel ratio or zoom.
	ErrInvalidOption = errors.New("shade: invalid frame option")

	// ErrUnsupportedFormat is returned for color formats other than
	// RGBA8Unorm and RGBA8UnormSrgb.
	ErrUnsupportedFormat = errors.New("shade: unsupported color format")
)

// IDFormat is the format of Output.ID.
const IDFormat = gputypes.TextureFormatRGBA8Unorm

// Frame evaluates scenes over a fixed pixel grid.
//
// Frame is safe for concurrent use. Close releases its workers; Render calls
// made after Close shade on the calling goroutine.
type Frame struct {
	width, height int
	opts          frameOptions
	transform     f64.Aff3
	pool          *parallel.WorkerPool
}

// NewFrame creates a frame of the given size.
func NewFrame(width, height int, opts ...FrameOption) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !(o.pixelRatio > 0) {
		return nil, fmt.Errorf("%w: pixel ratio %v", ErrInvalidOption, o.pixelRatio)
	}
	if !(o.zoom > 0) {
		return nil, fmt.Errorf("%w: zoom %v", ErrInvalidOption, o.zoom)
	}
	switch o.format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, o.format)
	}

	transform := Centered(width, height, o.pixelRatio)
	if o.transform != nil {
		transform = *o.transform
	}

	f := &Frame{
		width:     width,
		height:    height,
		opts:      o,
		transform: transform,
		pool:      parallel.NewWorkerPool(o.workers),
	}

	Logger().Debug("shade: frame created",
		"width", width,
		"height", height,
		"workers", f.pool.Workers(),
		"format", o.format,
		"mode", o.mode)

	return f, nil
}

// Centered returns the transform mapping pixel coordinates of a width x
// height frame to a scene centered on the frame with Y pointing up and
// pixelRatio device pixels per scene unit.
func Centered(width, height int, pixelRatio float64) f64.Aff3 {
	k := 1 / pixelRatio
	return f64.Aff3{
		k, 0, -float64(width) / 2 * k,
		0, -k, float64(height) / 2 * k,
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Transform returns the pixel-to-scene transform.
func (f *Frame) Transform() f64.Aff3 { return f.transform }

// Invocation returns the context for the pixel center (x+0.5, y+0.5).
func (f *Frame) Invocation(x, y int) shape.Invocation {
	return shape.Invocation{
		PixelRatio: f.opts.pixelRatio,
		Zoom:       f.opts.zoom,
		Position:   apply(f.transform, float64(x)+0.5, float64(y)+0.5),
		SymbolID:   f.opts.symbolID,
		Mode:       f.opts.mode,
	}
}

func apply(m f64.Aff3, x, y float64) f64.Vec2 {
	return f64.Vec2{
		m[0]*x + m[1]*y + m[2],
		m[3]*x + m[4]*y + m[5],
	}
}

// Render evaluates src at every pixel center. Rows are shaded in parallel;
// src must not mutate shared state.
func (f *Frame) Render(src shape.Source) *Output {
	rect := image.Rect(0, 0, f.width, f.height)
	out := &Output{
		Color:  image.NewNRGBA(rect),
		ID:     image.NewNRGBA(rect),
		Format: f.opts.format,
	}

	start := time.Now()
	f.pool.ForEachBand(f.height, f.opts.bandHeight, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < f.width; x++ {
				inv := f.Invocation(x, y)
				s := src(inv)
				out.Color.SetNRGBA(x, y, f.pack(s.Display(inv)))
				out.ID.SetNRGBA(x, y, color.LinearToNRGBA(s.IDOutput()))
			}
		}
	})

	Logger().Debug("shade: frame rendered",
		"width", f.width,
		"height", f.height,
		"elapsed", time.Since(start))

	return out
}

// pack stores a straight linear color in the frame's color format.
func (f *Frame) pack(c color.Rgba) stdcolor.NRGBA {
	if f.opts.format.IsSrgb() {
		return color.ToNRGBA(color.ToSrgba(c))
	}
	return color.LinearToNRGBA(c)
}

// Close releases the frame's workers. Render still works after Close but
// runs on the calling goroutine.
func (f *Frame) Close() error {
	f.pool.Close()
	return nil
}

// Output holds the images produced by Frame.Render.
type Output struct {
	// Color holds straight-alpha display colors encoded per Format.
	Color *image.NRGBA
	// ID holds id/255 in red and a binary alpha, in IDFormat.
	ID *image.NRGBA
	// Format is the color format of Color.
	Format gputypes.TextureFormat
}

// IDAt returns the id picked at pixel (x, y), or shape.Background. Ids are
// stored in 8 bits, so only ids 1 to 255 round-trip.
func (o *Output) IDAt(x, y int) shape.ID {
	c := o.ID.NRGBAAt(x, y)
	if c.A == 0 {
		return shape.Background
	}
	return shape.ID(c.R)
}

// Coverage summarizes an Output.
type Coverage struct {
	// Mean is the average color alpha in [0, 1].
	Mean float64
	// Pixels counts the pixels picked by each id other than Background.
	Pixels map[shape.ID]int
}

// Coverage computes the mean color alpha and the number of pixels picked
// by each id.
func (o *Output) Coverage() Coverage {
	b := o.Color.Bounds()
	cov := Coverage{Pixels: make(map[shape.ID]int)}
	if b.Empty() {
		return cov
	}

	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += float64(o.Color.NRGBAAt(x, y).A) / 255
			if id := o.IDAt(x, y); id != shape.Background {
				cov.Pixels[id]++
			}
		}
	}
	cov.Mean = sum / float64(b.Dx()*b.Dy())
	return cov
}
