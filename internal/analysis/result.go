package analysis

import (
	"github.com/lev-laptinov/DS-Project-2/internal/stats"
)

// Correlation is one computed Pearson correlation. Err carries a
// degeneracy message instead of a silently misleading value.
type Correlation struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	R     float64 `json:"r"`
	Pairs int     `json:"pairs"`
	Err   string  `json:"error,omitempty"`
}

// Histogram parameterizes one histogram: Sturges bin count plus the binned
// counts over equal-width intervals.
type Histogram struct {
	Column string    `json:"column"`
	N      int       `json:"n"`
	Bins   int       `json:"bins"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
	Err    string    `json:"error,omitempty"`
}

// FitOutcome is a regression result or the degeneracy that prevented it.
type FitOutcome struct {
	Label  string                  `json:"label"`
	Result *stats.RegressionResult `json:"result,omitempty"`
	Err    string                  `json:"error,omitempty"`
}

// OK reports whether the fit produced a result.
func (f FitOutcome) OK() bool {
	return f.Err == "" && f.Result != nil
}

// GroupFit is the regression within one level of a subgroup key.
type GroupFit struct {
	Level string     `json:"level"`
	N     int        `json:"n"`
	Fit   FitOutcome `json:"fit"`
}

// SubgroupComparison holds the per-level fits and the overall trend for one
// two-level partition key. The slope comparison is descriptive only; no
// interaction test is performed.
type SubgroupComparison struct {
	Key     string     `json:"key"`
	Groups  []GroupFit `json:"groups"`
	Overall FitOutcome `json:"overall"`
}

// Result is everything the analysis plan computed over the working table.
type Result struct {
	Summaries    []stats.Summary      `json:"summaries"`
	Histograms   []Histogram          `json:"histograms"`
	Correlations []Correlation        `json:"correlations"`
	LinearFit    FitOutcome           `json:"linear_fit"`
	QuadraticFit FitOutcome           `json:"quadratic_fit"`
	Subgroups    []SubgroupComparison `json:"subgroups"`
}

// Degeneracies counts the computations that failed with a statistical
// degeneracy rather than a value.
func (r *Result) Degeneracies() int {
	n := 0
	for _, h := range r.Histograms {
		if h.Err != "" {
			n++
		}
	}
	for _, c := range r.Correlations {
		if c.Err != "" {
			n++
		}
	}
	if r.LinearFit.Err != "" {
		n++
	}
	if r.QuadraticFit.Err != "" {
		n++
	}
	for _, sg := range r.Subgroups {
		if sg.Overall.Err != "" {
			n++
		}
		for _, g := range sg.Groups {
			if g.Fit.Err != "" {
				n++
			}
		}
	}
	return n
}
