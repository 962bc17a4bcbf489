// Package geometry holds the screen-space primitives shared by the layout,
// hit-testing and platform code.
package geometry

// Point is a position in screen or client coordinates.
type Point struct {
	X int32
	Y int32
}

// Rect is an axis-aligned rectangle. Right and Bottom are exclusive edges,
// matching the Win32 RECT convention.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// RectFromSize builds a rectangle from its origin and dimensions.
func RectFromSize(x, y, width, height int32) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns the vertical extent of r.
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Origin returns the top-left corner of r.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Contains reports whether p lies strictly inside r. Points on any edge are
// outside.
func (r Rect) Contains(p Point) bool {
	return p.X > r.Left && p.X < r.Right && p.Y > r.Top && p.Y < r.Bottom
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}
