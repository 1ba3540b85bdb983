// Package daylight tells whether a point in time lies between sunrise and
// sunset at a location.
package daylight

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Location is a position on earth.
type Location struct {
	Latitude  float64
	Longitude float64
}

// SunTimes are the sunrise and sunset of a date.
type SunTimes struct {
	Rise, Set time.Time
}

// SunTimes returns the sunrise and sunset at the location on the date of t
// (in t's location).
// On days without sunrise or sunset (polar day or night) both are zero.
func (l Location) SunTimes(t time.Time) SunTimes {
	rise, set := sunrise.SunriseSunset(l.Latitude, l.Longitude, t.Year(), t.Month(), t.Day())
	return SunTimes{Rise: rise, Set: set}
}

// IsDaylight returns whether the sun is up at the location at time t.
func (l Location) IsDaylight(t time.Time) bool {
	s := l.SunTimes(t)
	if s.Rise.IsZero() || s.Set.IsZero() {
		return false
	}
	return !t.Before(s.Rise) && t.Before(s.Set)
}
