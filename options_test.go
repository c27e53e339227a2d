package shade

import (
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/shade/shape"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.pixelRatio != 1 || o.zoom != 1 {
		t.Errorf("ratio, zoom = %v, %v, want 1, 1", o.pixelRatio, o.zoom)
	}
	if o.format != gputypes.TextureFormatRGBA8UnormSrgb {
		t.Errorf("format = %v, want RGBA8UnormSrgb", o.format)
	}
	if o.transform != nil {
		t.Error("transform should default to nil (centered)")
	}
}

func TestFrameOptions(t *testing.T) {
	m := f64.Aff3{2, 0, 1, 0, 2, 1}
	o := defaultOptions()
	for _, opt := range []FrameOption{
		WithPixelRatio(3),
		WithZoom(0.5),
		WithDisplayMode(shape.DisplayDistance),
		WithSymbolID(12),
		WithTransform(m),
		WithColorFormat(gputypes.TextureFormatRGBA8Unorm),
		WithWorkers(6),
		WithBandHeight(4),
	} {
		opt(&o)
	}

	if o.pixelRatio != 3 || o.zoom != 0.5 {
		t.Errorf("ratio, zoom = %v, %v", o.pixelRatio, o.zoom)
	}
	if o.mode != shape.DisplayDistance || o.symbolID != 12 {
		t.Errorf("mode, symbol = %v, %v", o.mode, o.symbolID)
	}
	if o.transform == nil || *o.transform != m {
		t.Errorf("transform = %v, want %v", o.transform, m)
	}
	if o.format != gputypes.TextureFormatRGBA8Unorm || o.workers != 6 || o.bandHeight != 4 {
		t.Errorf("format, workers, band = %v, %v, %v", o.format, o.workers, o.bandHeight)
	}
}
