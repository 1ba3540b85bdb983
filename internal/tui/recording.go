// Package tui turns terminal mouse input into pointer events for the time
// grid.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Sample is a single recorded mouse sample.
type Sample struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Button string `yaml:"button,omitempty"`
}

// Recording is a recorded sequence of mouse samples on a single day.
type Recording struct {
	// Date is the day the samples were recorded on, as "YYYY-MM-DD".
	Date    string   `yaml:"date"`
	Samples []Sample `yaml:"samples"`
}

// ParseRecording parses a YAML-formatted recording.
func ParseRecording(yamlData []byte) (Recording, error) {
	var r Recording
	err := yaml.Unmarshal(yamlData, &r)
	if err != nil {
		return Recording{}, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}
	return r, nil
}

// Events converts the recorded samples to tcell mouse events.
func (r Recording) Events() ([]*tcell.EventMouse, error) {
	events := make([]*tcell.EventMouse, 0, len(r.Samples))
	for i, s := range r.Samples {
		ev, err := s.Event()
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Event converts the sample to a tcell mouse event.
func (s Sample) Event() (*tcell.EventMouse, error) {
	buttons, err := ButtonMaskFromString(s.Button)
	if err != nil {
		return nil, err
	}
	return tcell.NewEventMouse(s.X, s.Y, buttons, tcell.ModNone), nil
}

// ButtonMaskFromString returns the tcell button mask for a button name.
// An empty name means no button is pressed.
func ButtonMaskFromString(name string) (tcell.ButtonMask, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return tcell.ButtonNone, nil
	case "left", "primary":
		return tcell.Button1, nil
	case "right", "secondary":
		return tcell.Button2, nil
	case "middle":
		return tcell.Button3, nil
	case "wheel-up":
		return tcell.WheelUp, nil
	case "wheel-down":
		return tcell.WheelDown, nil
	}
	return tcell.ButtonNone, fmt.Errorf("unknown mouse button '%s'", name)
}

// Drags splits a sequence of mouse events into drags.
//
// A drag is a maximal run of events with the primary button held. The
// release that follows it is not part of the drag.
func Drags(events []*tcell.EventMouse) [][]*tcell.EventMouse {
	var drags [][]*tcell.EventMouse
	var current []*tcell.EventMouse
	for _, ev := range events {
		if ev.Buttons()&tcell.Button1 != 0 {
			current = append(current, ev)
			continue
		}
		if len(current) > 0 {
			drags = append(drags, current)
			current = nil
		}
	}
	if len(current) > 0 {
		drags = append(drags, current)
	}
	return drags
}
