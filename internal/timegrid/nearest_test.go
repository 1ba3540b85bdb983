package timegrid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ja-he/timegrid/internal/timegrid"
)

func TestNearest(t *testing.T) {

	t.Run("member and minimal", func(t *testing.T) {
		candidateSets := [][]float64{
			{0, 1},
			{-3, 7, 2.5, 2.4},
			{10},
			{5, 4, 3, 2, 1},
		}
		values := []float64{-100, -2.7, 0, 0.49, 0.5, 0.51, 2.45, 3, 6.9, 1000}

		for _, candidates := range candidateSets {
			for _, v := range values {
				result, err := timegrid.Nearest(v, candidates)
				if err != nil {
					t.Fatal("unexpected error:", err.Error())
				}
				isMember := false
				for _, c := range candidates {
					if c == result {
						isMember = true
					}
					if math.Abs(v-c) < math.Abs(v-result) {
						t.Errorf("nearest(%f, %v) = %f, but %f is closer", v, candidates, result, c)
					}
				}
				if !isMember {
					t.Errorf("nearest(%f, %v) = %f is not a candidate", v, candidates, result)
				}
			}
		}
	})

	t.Run("ties resolve to first candidate", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			result, err := timegrid.Nearest(0.5, []float64{0, 1})
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if result != 0 {
				t.Fatal("expected tie to resolve to 0, got", result)
			}
		}

		result, _ := timegrid.Nearest(0.5, []float64{1, 0})
		if result != 1 {
			t.Error("expected tie to resolve to first candidate 1, got", result)
		}

		result, _ = timegrid.Nearest(2, []float64{5, 1, 3, 1})
		if result != 1 {
			t.Error("expected 1, got", result)
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		_, err := timegrid.Nearest(1, nil)
		if !errors.Is(err, timegrid.ErrInvalidInput) {
			t.Error("expected invalid input error, got", err)
		}
	})

	t.Run("NaN value", func(t *testing.T) {
		_, err := timegrid.Nearest(math.NaN(), []float64{0, 1})
		if !errors.Is(err, timegrid.ErrInvalidInput) {
			t.Error("expected invalid input error, got", err)
		}
	})

}
