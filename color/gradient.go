package color

import "sort"

// ControlPoint is a color at a given offset along a gradient.
type ControlPoint[S Space] struct {
	Offset float64
	Color  Color[S]
}

// Gradient is a two-stop linear gradient.
type Gradient[S Space] struct {
	Start ControlPoint[S]
	End   ControlPoint[S]
}

// NewGradient creates a two-stop gradient.
func NewGradient[S Space](start, end ControlPoint[S]) Gradient[S] {
	return Gradient[S]{Start: start, End: end}
}

// Sample returns the color at offset. The offset is normalized against the
// span between the two control points and clamped to [0,1], so the end
// colors extend flat beyond the stops. Colors mix in the gradient's space.
// When both stops share an offset the gradient is a hard edge: End is
// returned from that offset on.
func (g Gradient[S]) Sample(offset float64) Color[S] {
	if g.End.Offset == g.Start.Offset {
		if offset < g.Start.Offset {
			return g.Start.Color
		}
		return g.End.Color
	}
	t := clamp01((offset - g.Start.Offset) / (g.End.Offset - g.Start.Offset))
	return Mix(g.Start.Color, g.End.Color, t)
}

// Stops is a multi-stop gradient. Points are kept sorted by offset.
type Stops[S Space] struct {
	points []ControlPoint[S]
}

// NewStops creates a multi-stop gradient from control points in any order.
func NewStops[S Space](points ...ControlPoint[S]) Stops[S] {
	sorted := make([]ControlPoint[S], len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return Stops[S]{points: sorted}
}

// Len returns the number of control points.
func (s Stops[S]) Len() int { return len(s.points) }

// Sample returns the color at offset by sampling the two-stop gradient made
// of the control points bracketing it. A gradient without points samples to
// the zero color, one with a single point to that point's color.
func (s Stops[S]) Sample(offset float64) Color[S] {
	switch len(s.points) {
	case 0:
		return Color[S]{}
	case 1:
		return s.points[0].Color
	}
	idx := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Offset >= offset
	})
	switch {
	case idx == 0:
		return s.points[0].Color
	case idx == len(s.points):
		return s.points[len(s.points)-1].Color
	}
	return NewGradient(s.points[idx-1], s.points[idx]).Sample(offset)
}
