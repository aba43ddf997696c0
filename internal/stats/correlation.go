package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

// Pearson computes the product-moment correlation between x and y using
// complete-observation pairwise deletion: a pair is excluded only when
// either of its two values is NaN. Fails when fewer than 2 complete pairs
// remain or when either variable has zero variance over the complete pairs.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(x), len(y))
	}

	cx, cy := completePairs(x, y)
	if len(cx) < 2 {
		return 0, apperrors.NewDegeneracyError("fewer than 2 complete pairs").
			WithContext("complete_pairs", len(cx))
	}

	if stat.Variance(cx, nil) == 0 || stat.Variance(cy, nil) == 0 {
		return 0, apperrors.NewDegeneracyError("zero variance in one of the variables").
			WithContext("complete_pairs", len(cx))
	}

	r := stat.Correlation(cx, cy, nil)
	// Floating-point noise can push |r| marginally past 1 on collinear data.
	return math.Max(-1, math.Min(1, r)), nil
}

// completePairs returns the values of x and y at positions where both are
// observed.
func completePairs(x, y []float64) ([]float64, []float64) {
	cx := make([]float64, 0, len(x))
	cy := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		cx = append(cx, x[i])
		cy = append(cy, y[i])
	}
	return cx, cy
}
