package ui

import "fmt"

// Rect is an axis-aligned rectangle on the UI's x-y-plane, which has its
// origin 0,0 in the top left.
//
// A Rect can serve as the container of a time grid column.
type Rect struct {
	X, Y, W, H int
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) of the rectangle.
func (r Rect) Dimensions() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}

// Contains returns whether the given position lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("+%d+%d %dx%d", r.X, r.Y, r.W, r.H)
}

// MouseCursorPos represents the position of a mouse cursor on the UI's
// x-y-plane.
type MouseCursorPos struct {
	X, Y int
}

// Position returns the cursor position, which makes a MouseCursorPos usable
// as a pointer event.
func (p MouseCursorPos) Position() (x, y int) {
	return p.X, p.Y
}
