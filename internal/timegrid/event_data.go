package timegrid

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// ViewContext is the set of view parameters a drag session works with.
// It is captured once per session and never changes afterwards.
type ViewContext struct {
	// Container is the surface the time column is rendered on.
	Container Container
	// ViewHeight is the rendered height of the column, in pixels.
	ViewHeight float64
	// HourStart and HourEnd are the hours of the day shown at the top and the
	// bottom of the column, e.g. 9 and 17.
	HourStart float64
	HourEnd   float64
	// BaseDate is midnight of the viewed day.
	BaseDate time.Time
}

// ViewContextFor builds a ViewContext whose view height is the rendered
// height of the container.
func ViewContextFor(container Container, hourStart, hourEnd float64, baseDate time.Time) (ViewContext, error) {
	if container == nil {
		return ViewContext{}, fmt.Errorf("%w: nil container", ErrInvalidInput)
	}
	_, _, _, h := container.Dimensions()
	vc := ViewContext{
		Container:  container,
		ViewHeight: float64(h),
		HourStart:  hourStart,
		HourEnd:    hourEnd,
		BaseDate:   baseDate,
	}
	return vc, vc.Validate()
}

// HourLength is the number of hours the view spans.
func (vc ViewContext) HourLength() float64 {
	return vc.HourEnd - vc.HourStart
}

// Validate returns an error wrapping ErrInvalidInput if the view context
// cannot be used to compute event data.
func (vc ViewContext) Validate() error {
	switch {
	case vc.Container == nil:
		return fmt.Errorf("%w: view context has no container", ErrInvalidInput)
	case !(vc.ViewHeight > 0) || math.IsInf(vc.ViewHeight, 1):
		return fmt.Errorf("%w: view height must be positive and finite (got %f)", ErrInvalidInput, vc.ViewHeight)
	case math.IsNaN(vc.HourStart) || math.IsNaN(vc.HourEnd):
		return fmt.Errorf("%w: hour bounds must be numbers", ErrInvalidInput)
	case vc.HourStart < 0 || vc.HourEnd > 24:
		return fmt.Errorf("%w: hour bounds %f..%f exceed the day", ErrInvalidInput, vc.HourStart, vc.HourEnd)
	case vc.HourEnd <= vc.HourStart:
		return fmt.Errorf("%w: hour end %f is not after hour start %f", ErrInvalidInput, vc.HourEnd, vc.HourStart)
	case vc.BaseDate.IsZero():
		return fmt.Errorf("%w: view context has no base date", ErrInvalidInput)
	}
	return nil
}

// EventData describes a single pointer sample in terms of the time grid.
type EventData struct {
	Container   Container
	ViewHeight  float64
	HourLength  float64
	GridYIndex  float64
	Time        time.Time
	OriginEvent PointerEvent

	// Extra holds the extension fields that did not override a base field.
	Extra map[string]any
}

// Extension holds caller-supplied fields to merge into an EventData.
// Keys that name a base field (see the Key* constants) override that field.
type Extension map[string]any

// The keys under which the base fields of an EventData can be extended and
// appear in EventData.Map.
const (
	KeyContainer   = "container"
	KeyViewHeight  = "viewHeight"
	KeyHourLength  = "hourLength"
	KeyGridYIndex  = "gridYIndex"
	KeyTime        = "time"
	KeyOriginEvent = "originEvent"
)

// Map returns the event data as a flat map of base and extension fields.
func (d EventData) Map() map[string]any {
	m := make(map[string]any, 6+len(d.Extra))
	for k, v := range d.Extra {
		m[k] = v
	}
	m[KeyContainer] = d.Container
	m[KeyViewHeight] = d.ViewHeight
	m[KeyHourLength] = d.HourLength
	m[KeyGridYIndex] = d.GridYIndex
	m[KeyTime] = d.Time
	m[KeyOriginEvent] = d.OriginEvent
	return m
}

func (d *EventData) extend(ext Extension) error {
	for k, v := range ext {
		var ok bool
		switch k {
		case KeyContainer:
			d.Container, ok = v.(Container)
		case KeyViewHeight:
			d.ViewHeight, ok = toFloat(v)
		case KeyHourLength:
			d.HourLength, ok = toFloat(v)
		case KeyGridYIndex:
			d.GridYIndex, ok = toFloat(v)
		case KeyTime:
			d.Time, ok = v.(time.Time)
		case KeyOriginEvent:
			d.OriginEvent, ok = v.(PointerEvent)
		default:
			if d.Extra == nil {
				d.Extra = make(map[string]any)
			}
			d.Extra[k] = v
			ok = true
		}
		if !ok {
			return fmt.Errorf("%w: extension value for '%s' has unusable type %T", ErrInvalidInput, k, v)
		}
	}
	return nil
}

// toFloat converts a value of any Go integer or floating point kind.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// EventDataFactory computes EventData for the pointer samples of one drag
// session.
//
// It holds nothing but the captured view context, so it can be used from any
// number of goroutines.
type EventDataFactory struct {
	container  Container
	viewHeight float64
	hourStart  float64
	hourLength float64
	baseSpan   time.Duration
	baseDate   time.Time
	resolver   PositionResolver
}

// NewEventDataFactory captures the given view context.
// A nil resolver resolves positions with RelativeResolver.
func NewEventDataFactory(vc ViewContext, resolver PositionResolver) (*EventDataFactory, error) {
	if err := vc.Validate(); err != nil {
		return nil, err
	}
	if resolver == nil {
		resolver = RelativeResolver{}
	}
	return &EventDataFactory{
		container:  vc.Container,
		viewHeight: vc.ViewHeight,
		hourStart:  vc.HourStart,
		hourLength: vc.HourLength(),
		baseSpan:   Hours(vc.HourLength()),
		baseDate:   vc.BaseDate,
		resolver:   resolver,
	}, nil
}

// EventData computes the event data for a pointer event, merging in the
// (optional) extension fields.
func (f *EventDataFactory) EventData(ev PointerEvent, ext Extension) (EventData, error) {
	pos, err := f.resolver.Resolve(ev, f.container)
	if err != nil {
		return EventData{}, fmt.Errorf("could not resolve pointer position: %w", err)
	}

	gridYIndex, err := GridIndex(f.baseSpan, f.viewHeight, pos.Y)
	if err != nil {
		return EventData{}, fmt.Errorf("could not compute grid index for y=%f: %w", pos.Y, err)
	}

	offsetHours := gridYIndex + f.hourStart
	if !HoursInRange(offsetHours) {
		return EventData{}, fmt.Errorf("%w: y=%f lies %f hours from the base date, which is beyond representable time", ErrInvalidInput, pos.Y, offsetHours)
	}

	data := EventData{
		Container:   f.container,
		ViewHeight:  f.viewHeight,
		HourLength:  f.hourLength,
		GridYIndex:  gridYIndex,
		Time:        f.baseDate.Add(Hours(offsetHours)),
		OriginEvent: ev,
	}
	if err := data.extend(ext); err != nil {
		return EventData{}, err
	}
	return data, nil
}

// HourStart is the hour shown at the top of the session's column.
func (f *EventDataFactory) HourStart() float64 { return f.hourStart }

// BaseDate is midnight of the session's day.
func (f *EventDataFactory) BaseDate() time.Time { return f.baseDate }
