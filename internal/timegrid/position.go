package timegrid

import (
	"fmt"
	"reflect"
)

// PointerEvent is a raw pointer sample, such as a mouse move.
// Positions are screen positions with the origin in the top left.
//
// *tcell.EventMouse satisfies this interface.
type PointerEvent interface {
	Position() (x, y int)
}

// Container is the rendering surface a column of the time grid is drawn on.
// Its dimensions are in the same coordinate system as the PointerEvent
// positions.
type Container interface {
	Dimensions() (x, y, w, h int)
}

// Point is a position relative to a container's top left corner.
type Point struct {
	X, Y float64
}

// PositionResolver translates a pointer event into a position relative to a
// container.
type PositionResolver interface {
	Resolve(ev PointerEvent, container Container) (Point, error)
}

// PositionResolverFunc adapts a function to a PositionResolver.
type PositionResolverFunc func(ev PointerEvent, container Container) (Point, error)

// Resolve calls f.
func (f PositionResolverFunc) Resolve(ev PointerEvent, container Container) (Point, error) {
	return f(ev, container)
}

// RelativeResolver resolves pointer events by subtracting the container's
// origin from the event position.
type RelativeResolver struct{}

// Resolve returns the position of ev relative to container.
func (RelativeResolver) Resolve(ev PointerEvent, container Container) (Point, error) {
	if isNil(ev) {
		return Point{}, fmt.Errorf("%w: nil pointer event", ErrInvalidInput)
	}
	if isNil(container) {
		return Point{}, fmt.Errorf("%w: nil container", ErrInvalidInput)
	}
	evX, evY := ev.Position()
	cX, cY, _, _ := container.Dimensions()
	return Point{X: float64(evX - cX), Y: float64(evY - cY)}, nil
}

// isNil reports whether v is nil or an interface holding a nil pointer (e.g.
// a (*tcell.EventMouse)(nil)).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
