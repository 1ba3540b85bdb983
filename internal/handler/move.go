package handler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timegrid/internal/timegrid"
)

// TimeMove handles drags that move an existing event along a time column.
type TimeMove struct {
	timegrid.Core
}

// Delta returns how far the drag from start to current has moved, snapped to
// the grid.
func (m TimeMove) Delta(start, current timegrid.EventData) time.Duration {
	return timegrid.Hours(current.GridYIndex - start.GridYIndex)
}

// Apply returns r moved by the drag from start to current.
//
// The moved range is kept within the column, unless it is longer than the
// column to begin with.
//
// As with TimeCreation.Selection, start and current must carry the computed
// Time and GridYIndex; samples that disagree on the column are rejected.
func (m TimeMove) Apply(r Range, start, current timegrid.EventData) (Range, error) {
	if err := checkSameColumn(start, current); err != nil {
		return Range{}, err
	}
	if r.End.Before(r.Start) {
		return Range{}, fmt.Errorf("%w: range %s ends before it starts", timegrid.ErrInvalidInput, r)
	}

	delta := m.Delta(start, current)
	moved := Range{Start: r.Start.Add(delta), End: r.End.Add(delta)}

	bounds := columnBounds(start)
	length := r.Duration()
	if length <= bounds.Duration() {
		switch {
		case moved.Start.Before(bounds.Start):
			moved = Range{Start: bounds.Start, End: bounds.Start.Add(length)}
		case moved.End.After(bounds.End):
			moved = Range{Start: bounds.End.Add(-length), End: bounds.End}
		}
	}

	log.Debug().
		Dur("delta", delta).
		Stringer("from", r).
		Stringer("to", moved).
		Msg("computed move")

	return moved, nil
}
