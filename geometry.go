package formant

import "math"

// Point is a position in page coordinates.
type Point struct {
	X, Y float64
}

// Rect is an element's bounding box in page coordinates, following the
// DOMRect convention: X/Y is the origin, Width/Height may be negative.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge (y for positive height, y + height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge (x for positive width, x + width for negative).
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Orientation is a widget's primary axis.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Bounds is an absolute numeric range.
type Bounds struct {
	Min, Max float64
}

// Quantize snaps value to the nearest multiple of step. Ties round half
// away from zero. Callers are responsible for normalizing step; see
// effectiveStep.
func Quantize(value, step float64) float64 {
	return math.Round(value/step) * step
}

// effectiveStep guards quantization against zero or negative steps.
func effectiveStep(step float64) float64 {
	if step <= 0 {
		return 1
	}
	return step
}

// PositionToValue maps a pointer position on a track to a quantized value
// within bounds. The fraction along the primary axis is inverted for
// vertical orientation (screen-down reads as low value) or for rtl
// direction; the two triggers are one combined condition, so a vertical
// rtl track does not flip twice. An unmeasured track (zero extent on the
// primary axis) maps to 0.
func PositionToValue(pt Point, track Rect, o Orientation, d Direction, b Bounds, step float64) float64 {
	var percent float64
	switch o {
	case Vertical:
		if track.Height == 0 {
			return 0
		}
		percent = (pt.Y - track.Top()) / track.Height
	default:
		if track.Width == 0 {
			return 0
		}
		percent = (pt.X - track.Left()) / track.Width
	}
	if o == Vertical || d == RTL {
		percent = 1 - percent
	}
	return Quantize(b.Min+percent*(b.Max-b.Min), effectiveStep(step))
}
