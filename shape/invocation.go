// Package shape composites signed-distance shapes into antialiased,
// premultiplied colors and selects the id of the shape owning a pixel.
//
// Every function is pure: the per-pixel context travels in an explicit
// Invocation value, so pixels can be evaluated in any order and in
// parallel.
package shape

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// DisplayMode selects what Shape.Display returns.
type DisplayMode int

const (
	// DisplayCoverage shows the composited color.
	DisplayCoverage DisplayMode = iota
	// DisplayDistance shows a heatmap of the distance field.
	DisplayDistance
)

// String returns the mode name.
func (m DisplayMode) String() string {
	switch m {
	case DisplayCoverage:
		return "coverage"
	case DisplayDistance:
		return "distance"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// ParseDisplayMode parses the name returned by DisplayMode.String.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch s {
	case "coverage", "0":
		return DisplayCoverage, nil
	case "distance", "1":
		return DisplayDistance, nil
	}
	return 0, fmt.Errorf("shape: unknown display mode %q", s)
}

// Invocation is the read-only context of one pixel evaluation.
type Invocation struct {
	// PixelRatio converts scene units to device pixels. Must be positive.
	PixelRatio float64
	// Zoom sharpens (>1) or softens (<1) the antialiasing ramp. Must be positive.
	Zoom float64
	// Position is the sample point in scene space.
	Position f64.Vec2
	// SymbolID is the caller-chosen id used by FillSymbol.
	SymbolID ID
	// Mode selects the display output.
	Mode DisplayMode
}

// DefaultInvocation returns a context with unit pixel ratio and zoom at the
// origin.
func DefaultInvocation() Invocation {
	return Invocation{PixelRatio: 1, Zoom: 1}
}

// At returns a copy of inv sampling p.
func (inv Invocation) At(p f64.Vec2) Invocation {
	inv.Position = p
	return inv
}
