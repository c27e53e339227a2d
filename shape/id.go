package shape

import "github.com/gogpu/shade/sdf"

// ID identifies a shape in the id buffer. Zero is the background.
type ID int

// Background is the id of pixels not covered by any shape.
const Background ID = 0

// NewIDLayer returns i where bs is inside or on its boundary and Background
// elsewhere.
func NewIDLayer(bs sdf.BoundSdf, i ID) ID {
	if bs.Distance <= 0 {
		return i
	}
	return Background
}

// topID returns the id of the upper operand if it encloses the sample,
// otherwise the id of the lower one.
func topID(lower, upper Shape) ID {
	if upper.Sdf.Distance <= 0 {
		return upper.ID
	}
	return lower.ID
}
