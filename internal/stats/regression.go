package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

// Coefficient holds one fitted regression term.
type Coefficient struct {
	Name     string  `json:"name"`
	Estimate float64 `json:"estimate"`
	StdErr   float64 `json:"std_err"`
	TValue   float64 `json:"t_value"`
	PValue   float64 `json:"p_value"`
}

// RegressionResult is the outcome of a single-predictor OLS fit with an
// intercept. The quadratic model of the analysis plan reuses this machinery
// with the pre-squared column as its one predictor; it is not a two-term
// polynomial.
type RegressionResult struct {
	Response  string      `json:"response"`
	Predictor string      `json:"predictor"`
	Intercept Coefficient `json:"intercept"`
	Slope     Coefficient `json:"slope"`
	R2        float64     `json:"r2"`
	AdjR2     float64     `json:"adj_r2"`
	N         int         `json:"n"`
	DF        int         `json:"df"`
}

// FitLinear fits response ~ predictor by ordinary least squares with an
// intercept. Pairs with a missing value on either side are excluded.
// Standard errors and two-tailed p-values come from the Student's t
// distribution with n-2 degrees of freedom. Fails when n <= 2 or the
// predictor is constant (singular design).
func FitLinear(response, predictor string, y, x []float64) (*RegressionResult, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("length mismatch: %d vs %d", len(y), len(x))
	}

	cx, cy := completePairs(x, y)
	n := len(cx)
	if n <= 2 {
		return nil, apperrors.NewDegeneracyError("too few complete pairs for regression").
			WithContext("response", response).
			WithContext("predictor", predictor).
			WithContext("n", n)
	}

	sxx := centeredSumOfSquares(cx)
	if sxx == 0 {
		return nil, apperrors.NewDegeneracyError("predictor is constant, design is singular").
			WithContext("response", response).
			WithContext("predictor", predictor)
	}

	alpha, beta := stat.LinearRegression(cx, cy, nil, false)

	var ssRes, ssTot float64
	yMean := stat.Mean(cy, nil)
	for i := range cx {
		resid := cy[i] - (alpha + beta*cx[i])
		ssRes += resid * resid
		dev := cy[i] - yMean
		ssTot += dev * dev
	}

	df := n - 2
	s2 := ssRes / float64(df)
	xMean := stat.Mean(cx, nil)

	slopeSE := math.Sqrt(s2 / sxx)
	interceptSE := math.Sqrt(s2 * (1/float64(n) + xMean*xMean/sxx))

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}
	adjR2 := 1 - (1-r2)*float64(n-1)/float64(df)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	return &RegressionResult{
		Response:  response,
		Predictor: predictor,
		Intercept: makeCoefficient("(Intercept)", alpha, interceptSE, tDist),
		Slope:     makeCoefficient(predictor, beta, slopeSE, tDist),
		R2:        r2,
		AdjR2:     adjR2,
		N:         n,
		DF:        df,
	}, nil
}

// makeCoefficient derives the t statistic and two-tailed p-value for one
// term. A zero standard error means the fit is exact: the p-value collapses
// to 0 for a nonzero estimate and 1 otherwise.
func makeCoefficient(name string, estimate, se float64, tDist distuv.StudentsT) Coefficient {
	c := Coefficient{Name: name, Estimate: estimate, StdErr: se}
	switch {
	case se == 0 && estimate == 0:
		c.TValue = 0
		c.PValue = 1
	case se == 0:
		c.TValue = math.Inf(sign(estimate))
		c.PValue = 0
	default:
		c.TValue = estimate / se
		c.PValue = 2 * tDist.Survival(math.Abs(c.TValue))
	}
	return c
}

func centeredSumOfSquares(xs []float64) float64 {
	mean := stat.Mean(xs, nil)
	var ss float64
	for _, x := range xs {
		dev := x - mean
		ss += dev * dev
	}
	return ss
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}
