package timegrid

import "time"

// TimeCore is the set of time grid operations shared by the drag handlers.
type TimeCore interface {
	Nearest(value float64, candidates []float64) (float64, error)
	GridIndex(baseSpan time.Duration, heightPixels, offsetPixels float64) (float64, error)
	NewEventDataFactory(vc ViewContext, resolver PositionResolver) (*EventDataFactory, error)
}

// Core provides the TimeCore operations as methods.
// Embed it in a handler type to give that type the exact same grid behavior
// as every other handler embedding it.
type Core struct{}

var _ TimeCore = Core{}

// Nearest calls the package-level Nearest.
func (Core) Nearest(value float64, candidates []float64) (float64, error) {
	return Nearest(value, candidates)
}

// GridIndex calls the package-level GridIndex.
func (Core) GridIndex(baseSpan time.Duration, heightPixels, offsetPixels float64) (float64, error) {
	return GridIndex(baseSpan, heightPixels, offsetPixels)
}

// NewEventDataFactory calls the package-level NewEventDataFactory.
func (Core) NewEventDataFactory(vc ViewContext, resolver PositionResolver) (*EventDataFactory, error) {
	return NewEventDataFactory(vc, resolver)
}
