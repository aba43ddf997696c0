package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/lev-laptinov/DS-Project-2/internal/analysis"
)

// Narrative generates the plain-text interpretation of the computed
// statistics: correlation strength and direction, regression significance,
// and the descriptive subgroup slope comparison.
func Narrative(meta Metadata, result *analysis.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== STUDENT ENROLLMENT ANALYSIS ===\n")
	fmt.Fprintf(&b, "Dataset: %s\n", meta.DatasetPath)
	fmt.Fprintf(&b, "Rows: %d loaded, %d retained after the positivity filter\n\n",
		meta.RowsLoaded, meta.RowsRetained)

	b.WriteString("--- Correlations ---\n")
	for _, c := range result.Correlations {
		if c.Err != "" {
			fmt.Fprintf(&b, "%s vs %s: not computable (%s)\n", c.X, c.Y, c.Err)
			continue
		}
		fmt.Fprintf(&b, "%s vs %s: r = %.3f, a %s %s association over %d pairs\n",
			c.X, c.Y, c.R, correlationStrength(c.R), correlationDirection(c.R), c.Pairs)
	}

	b.WriteString("\n--- Linear model ---\n")
	writeFitNarrative(&b, result.LinearFit)

	b.WriteString("\n--- Quadratic model (single squared term) ---\n")
	writeFitNarrative(&b, result.QuadraticFit)

	b.WriteString("\n--- Subgroup trends (descriptive, no interaction test) ---\n")
	for _, sg := range result.Subgroups {
		writeSubgroupNarrative(&b, sg)
	}

	return b.String()
}

func writeFitNarrative(b *strings.Builder, fit analysis.FitOutcome) {
	if !fit.OK() {
		fmt.Fprintf(b, "%s: not computable (%s)\n", fit.Label, fit.Err)
		return
	}
	res := fit.Result
	fmt.Fprintf(b, "%s: slope %.4f (p %s), R2 = %.3f over %d observations.\n",
		fit.Label, res.Slope.Estimate, pValueWording(res.Slope.PValue), res.R2, res.N)
	fmt.Fprintf(b, "The model explains %.1f%% of the variance in %s.\n",
		res.R2*100, res.Response)
}

func writeSubgroupNarrative(b *strings.Builder, sg analysis.SubgroupComparison) {
	var slopes []string
	var fitted []analysis.GroupFit
	for _, g := range sg.Groups {
		if !g.Fit.OK() {
			slopes = append(slopes, fmt.Sprintf("%s: not computable", g.Level))
			continue
		}
		fitted = append(fitted, g)
		slopes = append(slopes, fmt.Sprintf("%s: slope %.4f (n=%d)", g.Level, g.Fit.Result.Slope.Estimate, g.N))
	}
	fmt.Fprintf(b, "By %s - %s.", sg.Key, strings.Join(slopes, "; "))

	if len(fitted) == 2 {
		diff := math.Abs(fitted[0].Fit.Result.Slope.Estimate - fitted[1].Fit.Result.Slope.Estimate)
		fmt.Fprintf(b, " The slopes differ by %.4f; the comparison is visual only.", diff)
	}
	b.WriteString("\n")
}

func correlationStrength(r float64) string {
	switch abs := math.Abs(r); {
	case abs >= 0.7:
		return "strong"
	case abs >= 0.4:
		return "moderate"
	case abs >= 0.2:
		return "weak"
	default:
		return "negligible"
	}
}

func correlationDirection(r float64) string {
	if r < 0 {
		return "negative"
	}
	return "positive"
}

func pValueWording(p float64) string {
	if p < 0.001 {
		return "< 0.001"
	}
	return fmt.Sprintf("= %.4f", p)
}
