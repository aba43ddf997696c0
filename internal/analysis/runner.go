package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lev-laptinov/DS-Project-2/internal/dataset"
	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
	"github.com/lev-laptinov/DS-Project-2/internal/stats"
)

// Runner executes an analysis plan over a working table. The individual
// computations are pure functions of the same immutable table, so they run
// concurrently; each writes into its own pre-allocated slot of the result.
type Runner struct {
	plan        Plan
	concurrency int
	logger      *slog.Logger
}

// NewRunner creates a runner for the given plan.
func NewRunner(plan Plan, concurrency int, logger *slog.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{plan: plan, concurrency: concurrency, logger: logger}
}

// Run executes every computation of the plan. Statistical degeneracy in one
// computation is recorded in its slot and never aborts the others; only
// context cancellation stops the run.
func (r *Runner) Run(ctx context.Context, records []dataset.StudentRecord) (*Result, error) {
	r.logger.InfoContext(ctx, "running analysis plan",
		"rows", len(records),
		"concurrency", r.concurrency)

	result := &Result{
		Summaries:    make([]stats.Summary, len(r.plan.SummaryColumns)),
		Histograms:   make([]Histogram, len(r.plan.HistogramColumns)),
		Correlations: make([]Correlation, len(r.plan.Correlations)),
		Subgroups:    make([]SubgroupComparison, len(r.plan.SubgroupKeys)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, col := range r.plan.SummaryColumns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, err := stats.Describe(col.Name, Extract(records, col))
			if err != nil {
				r.logger.WarnContext(ctx, "summary degenerate", "column", col.Name, "error", err)
				result.Summaries[i] = stats.Summary{Column: col.Name}
				return nil
			}
			result.Summaries[i] = summary
			return nil
		})
	}

	for i, col := range r.plan.HistogramColumns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result.Histograms[i] = r.histogram(ctx, records, col)
			return nil
		})
	}

	for i, pair := range r.plan.Correlations {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result.Correlations[i] = r.correlation(ctx, records, pair)
			return nil
		})
	}

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.LinearFit = r.fit(ctx, records, r.plan.LinearFit)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		result.QuadraticFit = r.fit(ctx, records, r.plan.QuadraticFit)
		return nil
	})

	for i, key := range r.plan.SubgroupKeys {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result.Subgroups[i] = r.subgroup(ctx, records, key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	if n := result.Degeneracies(); n > 0 {
		r.logger.WarnContext(ctx, "analysis finished with degenerate computations", "count", n)
	} else {
		r.logger.InfoContext(ctx, "analysis finished")
	}
	return result, nil
}

// histogram computes the Sturges bin count and equal-width binned counts
// for one column.
func (r *Runner) histogram(ctx context.Context, records []dataset.StudentRecord, col NumericColumn) Histogram {
	h := Histogram{Column: col.Name}

	xs := observed(Extract(records, col))
	h.N = len(xs)

	bins, err := stats.SturgesBins(len(xs))
	if err != nil {
		r.logger.WarnContext(ctx, "histogram degenerate", "column", col.Name, "error", err)
		h.Err = err.Error()
		return h
	}
	h.Bins = bins

	h.Min, h.Max = xs[0], xs[0]
	for _, x := range xs {
		h.Min = math.Min(h.Min, x)
		h.Max = math.Max(h.Max, x)
	}

	h.Edges = make([]float64, bins+1)
	width := (h.Max - h.Min) / float64(bins)
	for i := 0; i <= bins; i++ {
		h.Edges[i] = h.Min + float64(i)*width
	}

	h.Counts = make([]int, bins)
	for _, x := range xs {
		idx := bins - 1
		if width > 0 {
			idx = int((x - h.Min) / width)
			if idx >= bins { // the maximum falls into the last bin
				idx = bins - 1
			}
		}
		h.Counts[idx]++
	}
	return h
}

func (r *Runner) correlation(ctx context.Context, records []dataset.StudentRecord, pair CorrelationPair) Correlation {
	c := Correlation{X: pair.X.Name, Y: pair.Y.Name}

	xs := Extract(records, pair.X)
	ys := Extract(records, pair.Y)
	c.Pairs = countCompletePairs(xs, ys)

	rho, err := stats.Pearson(xs, ys)
	if err != nil {
		r.logger.WarnContext(ctx, "correlation degenerate",
			"x", pair.X.Name, "y", pair.Y.Name, "error", err)
		c.Err = err.Error()
		return c
	}
	c.R = rho
	return c
}

func (r *Runner) fit(ctx context.Context, records []dataset.StudentRecord, spec FitSpec) FitOutcome {
	label := fmt.Sprintf("%s ~ %s", spec.Response.Name, spec.Predictor.Name)
	out := FitOutcome{Label: label}

	res, err := stats.FitLinear(spec.Response.Name, spec.Predictor.Name,
		Extract(records, spec.Response), Extract(records, spec.Predictor))
	if err != nil {
		if !apperrors.IsDegeneracy(err) {
			r.logger.ErrorContext(ctx, "regression failed", "fit", label, "error", err)
		} else {
			r.logger.WarnContext(ctx, "regression degenerate", "fit", label, "error", err)
		}
		out.Err = err.Error()
		return out
	}
	out.Result = res
	return out
}

// subgroup splits the table by one key and fits the subgroup regression on
// each level plus the undivided table.
func (r *Runner) subgroup(ctx context.Context, records []dataset.StudentRecord, key CategoricalKey) SubgroupComparison {
	comparison := SubgroupComparison{Key: key.Name}

	parts := Split(records, key)
	for _, level := range key.Levels {
		sub := parts[level]
		comparison.Groups = append(comparison.Groups, GroupFit{
			Level: level,
			N:     len(sub),
			Fit:   r.fit(ctx, sub, r.plan.SubgroupFit),
		})
	}

	comparison.Overall = r.fit(ctx, records, r.plan.SubgroupFit)
	return comparison
}

// observed drops NaN values.
func observed(xs []float64) []float64 {
	clean := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			clean = append(clean, x)
		}
	}
	return clean
}

func countCompletePairs(x, y []float64) int {
	n := 0
	for i := range x {
		if !math.IsNaN(x[i]) && !math.IsNaN(y[i]) {
			n++
		}
	}
	return n
}
