package timegrid

import (
	"fmt"
	"math"
)

// Nearest returns the candidate closest to value.
//
// When several candidates are equally close, the first of them (in the order
// given) wins, so Nearest(0.5, []float64{0, 1}) is 0.
func Nearest(value float64, candidates []float64) (float64, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: no candidates to find nearest value to %f in", ErrInvalidInput, value)
	}
	if math.IsNaN(value) {
		return 0, fmt.Errorf("%w: cannot find nearest value to NaN", ErrInvalidInput)
	}

	diffs := make([]float64, len(candidates))
	minDiff := math.Inf(1)
	for i, c := range candidates {
		diffs[i] = math.Abs(value - c)
		if diffs[i] < minDiff {
			minDiff = diffs[i]
		}
	}

	for i, d := range diffs {
		if d == minDiff {
			return candidates[i], nil
		}
	}

	// only reachable if every candidate is NaN
	return 0, fmt.Errorf("%w: no comparable candidate among %v", ErrInvalidInput, candidates)
}
