package timegrid

import (
	"fmt"
	"math"
	"time"
)

// GridIndex returns the position of offsetPixels on a column of heightPixels
// that spans baseSpan, in hours and snapped to half hours.
//
// The pixel offset maps linearly onto the span. The fractional part of the
// resulting hour value is snapped to the hour (below the half) or the half
// hour (from the half on up), so results are always one of 0, 0.5, 1, 1.5, ...
//
// Offsets outside of [0, heightPixels] are not clamped; callers get negative
// results or results beyond the span and have to deal with them themselves.
func GridIndex(baseSpan time.Duration, heightPixels, offsetPixels float64) (float64, error) {
	if baseSpan <= 0 {
		return 0, fmt.Errorf("%w: non-positive base span %s", ErrInvalidInput, baseSpan)
	}
	if !(heightPixels > 0) || math.IsInf(heightPixels, 1) {
		return 0, fmt.Errorf("%w: height must be positive and finite (got %f)", ErrInvalidInput, heightPixels)
	}
	if math.IsNaN(offsetPixels) || math.IsInf(offsetPixels, 0) {
		return 0, fmt.Errorf("%w: offset must be finite (got %f)", ErrInvalidInput, offsetPixels)
	}

	// offset : height = x : baseSpan
	raw := offsetPixels * baseSpan.Hours() / heightPixels

	whole := math.Floor(raw)
	nearest, err := Nearest(raw-whole, []float64{0, 1})
	if err != nil {
		return 0, fmt.Errorf("could not snap fraction of %f: %w", raw, err)
	}

	if nearest == 1 {
		return whole + 0.5, nil
	}
	return whole, nil
}

// HoursInRange reports whether h hours can be represented as a
// time.Duration.
func HoursInRange(h float64) bool {
	d := h * float64(time.Hour)
	return d < math.MaxInt64 && d > math.MinInt64
}

// Hours converts a (possibly fractional) number of hours to a duration.
// The result is only meaningful for h within HoursInRange.
func Hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
