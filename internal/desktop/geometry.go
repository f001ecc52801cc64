package desktop

// Point is a pointer position in viewport coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sub returns the delta p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Geometry is the position and size of a window.
type Geometry struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Drag offsets start by the pointer delta.
func Drag(start Geometry, delta Point) Geometry {
	g := start
	g.Left = start.Left + delta.X
	g.Top = start.Top + delta.Y
	return g
}

// Resize applies a pointer delta to start as seen from the given handle.
// The bottom-right handle grows width and height. The bottom-left handle
// keeps the right edge fixed, and the top-left handle keeps the
// bottom-right corner fixed. A non-zero floor clamps the resulting size
// while still keeping the anchored edges in place.
func Resize(start Geometry, h Handle, delta Point, floor Size) Geometry {
	g := start
	switch h {
	case HandleBottomRight:
		g.Width = clampMin(start.Width+delta.X, floor.Width)
		g.Height = clampMin(start.Height+delta.Y, floor.Height)
	case HandleBottomLeft:
		g.Width = clampMin(start.Width-delta.X, floor.Width)
		g.Left = start.Left + start.Width - g.Width
		g.Height = clampMin(start.Height+delta.Y, floor.Height)
	case HandleTopLeft:
		g.Width = clampMin(start.Width-delta.X, floor.Width)
		g.Left = start.Left + start.Width - g.Width
		g.Height = clampMin(start.Height-delta.Y, floor.Height)
		g.Top = start.Top + start.Height - g.Height
	}
	return g
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
