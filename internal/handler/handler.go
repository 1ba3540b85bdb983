// Package handler holds the drag handlers of a time column.
//
// The handlers do not track a drag themselves. The host feeds them the event
// data of the sample the drag started at and of the current sample, and they
// compute what the drag amounts to.
package handler

import (
	"fmt"
	"time"

	"github.com/ja-he/timegrid/internal/timegrid"
)

// Range is a span of time, e.g. the span a drag selects.
type Range struct {
	Start, End time.Time
}

// Duration returns the length of the range.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start.Format("15:04"), r.End.Format("15:04"))
}

// slot is the length of a single grid slot in hours.
const slot = 0.5

// columnBounds returns the times shown at the top and the bottom of the
// column the event data was sampled on. It relies on Time and GridYIndex
// being consistent, which an extension overriding either of them breaks.
func columnBounds(d timegrid.EventData) Range {
	top := d.Time.Add(-timegrid.Hours(d.GridYIndex))
	return Range{Start: top, End: top.Add(timegrid.Hours(d.HourLength))}
}

func checkSameColumn(start, current timegrid.EventData) error {
	if !(start.HourLength > 0) {
		return fmt.Errorf("%w: start sample has non-positive hour length %f", timegrid.ErrInvalidInput, start.HourLength)
	}
	if start.HourLength != current.HourLength {
		return fmt.Errorf("%w: samples from different columns (hour lengths %f and %f)", timegrid.ErrInvalidInput, start.HourLength, current.HourLength)
	}
	startTop, currentTop := columnBounds(start).Start, columnBounds(current).Start
	if !startTop.Equal(currentTop) {
		return fmt.Errorf("%w: samples disagree on the column top (%s and %s), time or grid index overridden", timegrid.ErrInvalidInput, startTop, currentTop)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
