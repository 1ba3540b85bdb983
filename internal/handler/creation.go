package handler

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timegrid/internal/timegrid"
)

// TimeCreation handles drags that create a new event on a time column.
type TimeCreation struct {
	timegrid.Core
}

// Selection returns the range selected by dragging from start to current.
//
// The range covers every slot touched by the drag, in either direction, so a
// click without movement selects exactly one slot. It never reaches beyond the
// column.
//
// The column is derived from the samples' Time and GridYIndex, so both samples
// must carry the values computed for them. Samples whose time or grid index
// was overridden by an extension are rejected if they no longer agree on the
// column; overriding both samples by the same amount goes unnoticed and shifts
// the column.
func (c TimeCreation) Selection(start, current timegrid.EventData) (Range, error) {
	if err := checkSameColumn(start, current); err != nil {
		return Range{}, err
	}

	top, bottom := start, current
	if bottom.GridYIndex < top.GridYIndex {
		top, bottom = bottom, top
	}

	// columns shorter than a slot only have the one (truncated) slot
	lastSlot := math.Max(start.HourLength-slot, 0)
	topIndex := clamp(top.GridYIndex, 0, lastSlot)
	bottomIndex := math.Min(clamp(bottom.GridYIndex, 0, lastSlot)+slot, start.HourLength)

	bounds := columnBounds(top)
	selection := Range{
		Start: bounds.Start.Add(timegrid.Hours(topIndex)),
		End:   bounds.Start.Add(timegrid.Hours(bottomIndex)),
	}

	log.Debug().
		Float64("from-index", start.GridYIndex).
		Float64("to-index", current.GridYIndex).
		Stringer("selection", selection).
		Msg("computed creation selection")

	return selection, nil
}
