package stats

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

// Summary holds the descriptive statistics of one numeric column.
type Summary struct {
	Column  string  `json:"column"`
	N       int     `json:"n"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Q1      float64 `json:"q1"`
	Median  float64 `json:"median"`
	Q3      float64 `json:"q3"`
	Max     float64 `json:"max"`
}

// Describe computes the descriptive summary of xs. NaN values count as
// missing and are excluded. Fails when no observed values remain.
func Describe(column string, xs []float64) (Summary, error) {
	clean, missing := dropMissing(xs)
	if len(clean) == 0 {
		return Summary{}, apperrors.NewDegeneracyError("no observed values to summarize").
			WithContext("column", column)
	}

	sample := moremath.Sample{Xs: clean}
	sample.Sort()

	s := Summary{
		Column:  column,
		N:       len(clean),
		Missing: missing,
		Mean:    sample.Mean(),
		Min:     sample.Quantile(0),
		Q1:      sample.Quantile(0.25),
		Median:  sample.Quantile(0.5),
		Q3:      sample.Quantile(0.75),
		Max:     sample.Quantile(1),
	}
	if len(clean) >= 2 {
		s.StdDev = sample.StdDev()
	}
	return s, nil
}

// SturgesBins returns the Sturges' rule bin count ceil(1 + log2(n)) for a
// histogram over n observations. Fails when n is zero (log2 undefined).
func SturgesBins(n int) (int, error) {
	if n <= 0 {
		return 0, apperrors.NewDegeneracyError("bin count undefined for empty sample").
			WithContext("n", n)
	}
	return int(math.Ceil(1 + math.Log2(float64(n)))), nil
}

// dropMissing returns xs without NaN values and the number removed.
func dropMissing(xs []float64) ([]float64, int) {
	clean := make([]float64, 0, len(xs))
	missing := 0
	for _, x := range xs {
		if math.IsNaN(x) {
			missing++
			continue
		}
		clean = append(clean, x)
	}
	return clean, missing
}
