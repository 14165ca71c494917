package imgstack

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Intersect returns the intersection of r and other. The result's width and
// height are clamped to zero when the rectangles do not overlap, so the
// returned rectangle is always well-formed.
func (r Rect) Intersect(other Rect) Rect {
	x := maxInt(r.X, other.X)
	y := maxInt(r.Y, other.Y)
	right := minInt(r.X+r.Width, other.X+other.Width)
	bottom := minInt(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      x,
		Y:      y,
		Width:  maxInt(0, right-x),
		Height: maxInt(0, bottom-y),
	}
}

// Empty returns true if the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
