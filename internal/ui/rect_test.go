package ui_test

import (
	"testing"

	"github.com/ja-he/timegrid/internal/ui"
)

func TestRectContains(t *testing.T) {
	r := ui.Rect{X: 10, Y: 5, W: 20, H: 100}

	t.Run("inside", func(t *testing.T) {
		for _, p := range []ui.MouseCursorPos{{X: 10, Y: 5}, {X: 29, Y: 104}, {X: 15, Y: 50}} {
			if !r.Contains(p.X, p.Y) {
				t.Error("expected", r.String(), "to contain", p)
			}
		}
	})

	t.Run("outside", func(t *testing.T) {
		for _, p := range []ui.MouseCursorPos{{X: 9, Y: 5}, {X: 30, Y: 50}, {X: 15, Y: 105}, {X: 15, Y: 4}} {
			if r.Contains(p.X, p.Y) {
				t.Error("expected", r.String(), "not to contain", p)
			}
		}
	})
}

func TestRectDimensions(t *testing.T) {
	x, y, w, h := ui.Rect{X: 1, Y: 2, W: 3, H: 4}.Dimensions()
	if x != 1 || y != 2 || w != 3 || h != 4 {
		t.Error("unexpected dimensions:", x, y, w, h)
	}
}
