package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timegrid/internal/config"
	"github.com/ja-he/timegrid/internal/daylight"
	"github.com/ja-he/timegrid/internal/timegrid"
	"github.com/ja-he/timegrid/internal/ui"
)

// ViewOptions are the flags describing the time column, shared by the
// commands. Anything not given on the command line is taken from the config
// file.
type ViewOptions struct {
	Day       string   `short:"d" long:"day" description:"the day the column shows (default: today)" value-name:"<yyyy-mm-dd>"`
	HourStart *float64 `long:"hour-start" description:"the hour at the top of the column" value-name:"<hour>"`
	HourEnd   *float64 `long:"hour-end" description:"the hour at the bottom of the column" value-name:"<hour>"`
	Top       *int     `long:"top" description:"the y-position at which the column begins" value-name:"<y>"`
	Height    *int     `long:"height" description:"the rendered height of the column" value-name:"<h>"`
	Latitude  *float64 `long:"latitude" description:"latitude for tagging samples with daylight (requires longitude)"`
	Longitude *float64 `long:"longitude" description:"longitude for tagging samples with daylight (requires latitude)"`
}

// view is the column the commands take their samples on.
type view struct {
	context  timegrid.ViewContext
	location *daylight.Location
}

// baseDirPath returns the directory the config file is looked for in.
func baseDirPath() string {
	timegridHome := os.Getenv("TIMEGRID_HOME")
	if timegridHome == "" {
		return os.Getenv("HOME") + "/.config/timegrid"
	}
	return strings.TrimRight(timegridHome, "/")
}

// loadConfig reads the config file, falling back to defaults if there is
// none.
func loadConfig() (config.Config, error) {
	path := baseDirPath() + "/" + "config.yaml"
	yamlData, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(yamlData)
	if err != nil {
		return configData, fmt.Errorf("can't parse config data (%w)", err)
	}
	return configData, nil
}

// parseDay returns midnight of the given "YYYY-MM-DD" day in the local time
// zone, or midnight of today for an empty string.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	day, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse day '%s' (%w)", s, err)
	}
	return day, nil
}

// buildView combines the config data with the command line options.
// A non-empty day overrides the day option.
func (o *ViewOptions) buildView(configData config.Config, day string) (view, error) {
	viewConfig := configData.View
	if o.HourStart != nil {
		viewConfig.HourStart = o.HourStart
	}
	if o.HourEnd != nil {
		viewConfig.HourEnd = o.HourEnd
	}
	if o.Top != nil {
		viewConfig.Top = o.Top
	}
	if o.Height != nil {
		viewConfig.Height = o.Height
	}

	if day == "" {
		day = o.Day
	}
	baseDate, err := parseDay(day)
	if err != nil {
		return view{}, err
	}

	container := ui.Rect{X: 0, Y: *viewConfig.Top, W: 1, H: *viewConfig.Height}
	vc, err := timegrid.ViewContextFor(container, *viewConfig.HourStart, *viewConfig.HourEnd, baseDate)
	if err != nil {
		return view{}, fmt.Errorf("invalid view (%w)", err)
	}

	var location *daylight.Location
	switch {
	case o.Latitude != nil && o.Longitude != nil:
		location = &daylight.Location{Latitude: *o.Latitude, Longitude: *o.Longitude}
	case o.Latitude != nil || o.Longitude != nil:
		return view{}, fmt.Errorf("either both latitude and longitude need to be specified, or neither")
	case configData.Location != nil:
		location = &daylight.Location{Latitude: configData.Location.Latitude, Longitude: configData.Location.Longitude}
	}

	log.Debug().
		Stringer("container", container).
		Float64("hour-start", vc.HourStart).
		Float64("hour-end", vc.HourEnd).
		Time("base-date", vc.BaseDate).
		Msg("built view")

	return view{context: vc, location: location}, nil
}

// eventData computes the event data for ev on the session's column, tagging
// it with daylight information if a location is known.
func (v view) eventData(session *timegrid.EventDataFactory, ev timegrid.PointerEvent) (timegrid.EventData, error) {
	data, err := session.EventData(ev, nil)
	if err != nil || v.location == nil {
		return data, err
	}
	// the daylight field depends on the computed time, so it can only be
	// merged in by a second pass over the same event
	return session.EventData(ev, timegrid.Extension{
		"daylight": v.location.IsDaylight(data.Time),
	})
}

// sampleOutput is the printed form of an EventData.
type sampleOutput struct {
	X          int     `yaml:"x"`
	Y          int     `yaml:"y"`
	GridYIndex float64 `yaml:"grid-y-index"`
	Time       string  `yaml:"time"`
	HourLength float64 `yaml:"hour-length"`
	Daylight   *bool   `yaml:"daylight,omitempty"`
}

func toSampleOutput(data timegrid.EventData) sampleOutput {
	x, y := data.OriginEvent.Position()
	out := sampleOutput{
		X:          x,
		Y:          y,
		GridYIndex: data.GridYIndex,
		Time:       data.Time.Format(time.RFC3339),
		HourLength: data.HourLength,
	}
	if d, ok := data.Extra["daylight"].(bool); ok {
		out.Daylight = &d
	}
	return out
}
