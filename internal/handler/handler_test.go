package handler_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ja-he/timegrid/internal/handler"
	"github.com/ja-he/timegrid/internal/timegrid"
	"github.com/ja-he/timegrid/internal/ui"
)

var baseDate = time.Date(2022, 11, 13, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return baseDate.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// sampler returns a function giving the event data at a y-position of a
// 09:00-17:00 column with 100 pixels per hour.
func sampler(t *testing.T) func(y int) timegrid.EventData {
	f, err := timegrid.NewEventDataFactory(timegrid.ViewContext{
		Container:  ui.Rect{X: 0, Y: 0, W: 20, H: 800},
		ViewHeight: 800,
		HourStart:  9,
		HourEnd:    17,
		BaseDate:   baseDate,
	}, nil)
	if err != nil {
		t.Fatal("unexpected error creating factory:", err.Error())
	}
	return func(y int) timegrid.EventData {
		data, err := f.EventData(ui.MouseCursorPos{X: 5, Y: y}, nil)
		if err != nil {
			t.Fatal("unexpected error getting event data:", err.Error())
		}
		return data
	}
}

func TestTimeCreationSelection(t *testing.T) {
	sample := sampler(t)
	c := handler.TimeCreation{}

	expect := func(t *testing.T, fromY, toY int, expected handler.Range) {
		t.Helper()
		r, err := c.Selection(sample(fromY), sample(toY))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !r.Start.Equal(expected.Start) || !r.End.Equal(expected.End) {
			t.Errorf("dragging %d to %d selected %s, expected %s", fromY, toY, r, expected)
		}
	}

	t.Run("click", func(t *testing.T) {
		expect(t, 400, 400, handler.Range{Start: at(13, 0), End: at(13, 30)})
	})
	t.Run("downwards", func(t *testing.T) {
		expect(t, 150, 400, handler.Range{Start: at(10, 30), End: at(13, 30)})
	})
	t.Run("upwards", func(t *testing.T) {
		expect(t, 400, 150, handler.Range{Start: at(10, 30), End: at(13, 30)})
	})
	t.Run("past the bottom", func(t *testing.T) {
		expect(t, 700, 1000, handler.Range{Start: at(16, 0), End: at(17, 0)})
	})
	t.Run("past the top", func(t *testing.T) {
		expect(t, 100, -100, handler.Range{Start: at(9, 0), End: at(10, 30)})
	})

	t.Run("different columns", func(t *testing.T) {
		other := sample(100)
		other.HourLength = 4
		_, err := c.Selection(sample(100), other)
		if !errors.Is(err, timegrid.ErrInvalidInput) {
			t.Error("expected invalid input error, got", err)
		}
	})

	t.Run("overridden grid index", func(t *testing.T) {
		overridden := sample(400)
		overridden.GridYIndex = 99
		_, err := c.Selection(sample(100), overridden)
		if !errors.Is(err, timegrid.ErrInvalidInput) {
			t.Error("expected invalid input error, got", err)
		}
		_, err = c.Selection(overridden, sample(100))
		if !errors.Is(err, timegrid.ErrInvalidInput) {
			t.Error("expected invalid input error with overridden start, got", err)
		}
	})
}

func TestTimeMove(t *testing.T) {
	sample := sampler(t)
	m := handler.TimeMove{}

	t.Run("delta", func(t *testing.T) {
		if d := m.Delta(sample(200), sample(450)); d != 150*time.Minute {
			t.Error("expected delta of 2.5h, got", d)
		}
		if d := m.Delta(sample(450), sample(200)); d != -150*time.Minute {
			t.Error("expected delta of -2.5h, got", d)
		}
		if d := m.Delta(sample(200), sample(210)); d != 0 {
			t.Error("expected no delta within a slot, got", d)
		}
	})

	expect := func(t *testing.T, r handler.Range, fromY, toY int, expected handler.Range) {
		t.Helper()
		moved, err := m.Apply(r, sample(fromY), sample(toY))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !moved.Start.Equal(expected.Start) || !moved.End.Equal(expected.End) {
			t.Errorf("moving %s from %d to %d gave %s, expected %s", r, fromY, toY, moved, expected)
		}
	}

	t.Run("within the column", func(t *testing.T) {
		expect(t, handler.Range{Start: at(10, 0), End: at(11, 0)}, 200, 450, handler.Range{Start: at(12, 30), End: at(13, 30)})
	})
	t.Run("past the bottom", func(t *testing.T) {
		expect(t, handler.Range{Start: at(15, 0), End: at(16, 30)}, 100, 700, handler.Range{Start: at(15, 30), End: at(17, 0)})
	})
	t.Run("past the top", func(t *testing.T) {
		expect(t, handler.Range{Start: at(10, 0), End: at(11, 0)}, 400, 0, handler.Range{Start: at(9, 0), End: at(10, 0)})
	})
	t.Run("longer than the column", func(t *testing.T) {
		expect(t, handler.Range{Start: at(8, 0), End: at(18, 0)}, 0, 100, handler.Range{Start: at(9, 0), End: at(19, 0)})
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := m.Apply(handler.Range{Start: at(11, 0), End: at(10, 0)}, sample(0), sample(100))
		if !errors.Is(err, timegrid.ErrInvalidInput) {
			t.Error("expected invalid input error, got", err)
		}
	})

	t.Run("overridden grid index", func(t *testing.T) {
		overridden := sample(400)
		overridden.GridYIndex = 99
		_, err := m.Apply(handler.Range{Start: at(10, 0), End: at(11, 0)}, sample(100), overridden)
		if !errors.Is(err, timegrid.ErrInvalidInput) {
			t.Error("expected invalid input error, got", err)
		}
	})

	t.Run("overridden time", func(t *testing.T) {
		overridden := sample(400)
		overridden.Time = overridden.Time.Add(time.Hour)
		_, err := m.Apply(handler.Range{Start: at(10, 0), End: at(11, 0)}, sample(100), overridden)
		if !errors.Is(err, timegrid.ErrInvalidInput) {
			t.Error("expected invalid input error, got", err)
		}
	})
}

func TestHandlersShareGrid(t *testing.T) {
	var c handler.TimeCreation
	var m handler.TimeMove
	for offset := 0.0; offset <= 800; offset += 13 {
		a, errA := c.GridIndex(8*time.Hour, 800, offset)
		b, errB := m.GridIndex(8*time.Hour, 800, offset)
		if errA != nil || errB != nil {
			t.Fatal("unexpected errors:", errA, errB)
		}
		if a != b {
			t.Fatalf("creation and move handlers disagree at %f: %f vs. %f", offset, a, b)
		}
	}
}
