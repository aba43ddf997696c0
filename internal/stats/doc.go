// Package stats implements the statistics engine: descriptive summaries,
// Sturges bin counts, Pearson correlation with complete-observation
// pairwise deletion, and single-predictor ordinary least squares with
// Student's t p-values.
//
// Every operation is stateless and works on plain float64 slices. NaN
// marks a missing value. Statistically degenerate input (zero variance,
// too few complete pairs, a singular design) is reported as an error
// rather than a silent NaN; callers decide whether that aborts anything.
package stats
