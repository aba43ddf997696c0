package report

import (
	"fmt"
	"strconv"

	"github.com/lev-laptinov/DS-Project-2/internal/analysis"
	"github.com/lev-laptinov/DS-Project-2/internal/dataset"
	"github.com/lev-laptinov/DS-Project-2/internal/stats"
)

// Color palette for subgroup series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6", "#06B6D4",
}

const overallLineColor = "#111827"

// Build assembles the report bundle from the analysis result and the
// working table. Degenerate computations appear as explicit table rows so
// the reader sees the failure instead of a misleading number.
func Build(meta Metadata, result *analysis.Result, records []dataset.StudentRecord) *Bundle {
	b := &Bundle{Meta: meta}

	b.Tables = append(b.Tables, summaryTable(result.Summaries))
	b.Tables = append(b.Tables, correlationTable(result.Correlations))
	b.Tables = append(b.Tables, fitTable("linear_fit", "Linear model: first-year grade on admission grade", result.LinearFit))
	b.Tables = append(b.Tables, fitTable("quadratic_fit", "Quadratic model: previous qualification grade on squared admission grade", result.QuadraticFit))
	b.Tables = append(b.Tables, subgroupTable(result.Subgroups))

	b.Figures = append(b.Figures, histogramGrid(result.Histograms))
	b.Figures = append(b.Figures, scatterWithFit("linear_fit_scatter",
		"First-year grade vs admission grade",
		analysis.ColAdmissionGrade, analysis.ColFirstYearGrade,
		result.LinearFit, records))
	b.Figures = append(b.Figures, scatterWithFit("quadratic_fit_scatter",
		"Previous qualification grade vs squared admission grade",
		analysis.ColAdmissionGradeSquared, analysis.ColPrevQualGrade,
		result.QuadraticFit, records))

	for _, sg := range result.Subgroups {
		b.Figures = append(b.Figures, subgroupScatter(sg, records))
	}

	b.Narrative = Narrative(meta, result)
	return b
}

func summaryTable(summaries []stats.Summary) Table {
	t := Table{
		Name:    "summary",
		Title:   "Descriptive statistics",
		Headers: []string{"column", "n", "missing", "mean", "sd", "min", "q1", "median", "q3", "max"},
	}
	for _, s := range summaries {
		t.Rows = append(t.Rows, []string{
			s.Column,
			strconv.Itoa(s.N),
			strconv.Itoa(s.Missing),
			formatFloat(s.Mean),
			formatFloat(s.StdDev),
			formatFloat(s.Min),
			formatFloat(s.Q1),
			formatFloat(s.Median),
			formatFloat(s.Q3),
			formatFloat(s.Max),
		})
	}
	return t
}

func correlationTable(correlations []analysis.Correlation) Table {
	t := Table{
		Name:    "correlations",
		Title:   "Pearson correlations (complete observations)",
		Headers: []string{"x", "y", "pairs", "r", "note"},
	}
	for _, c := range correlations {
		r, note := formatFloat(c.R), ""
		if c.Err != "" {
			r, note = "", c.Err
		}
		t.Rows = append(t.Rows, []string{c.X, c.Y, strconv.Itoa(c.Pairs), r, note})
	}
	return t
}

func fitTable(name, title string, fit analysis.FitOutcome) Table {
	t := Table{
		Name:    name,
		Title:   title,
		Headers: []string{"term", "estimate", "std_error", "t_value", "p_value"},
	}
	if !fit.OK() {
		t.Rows = append(t.Rows, []string{fit.Label, "", "", "", fit.Err})
		return t
	}
	for _, c := range []stats.Coefficient{fit.Result.Intercept, fit.Result.Slope} {
		t.Rows = append(t.Rows, []string{
			c.Name,
			formatFloat(c.Estimate),
			formatFloat(c.StdErr),
			formatFloat(c.TValue),
			formatPValue(c.PValue),
		})
	}
	t.Rows = append(t.Rows, []string{
		"(model)",
		fmt.Sprintf("R2=%s", formatFloat(fit.Result.R2)),
		fmt.Sprintf("adj=%s", formatFloat(fit.Result.AdjR2)),
		fmt.Sprintf("n=%d", fit.Result.N),
		fmt.Sprintf("df=%d", fit.Result.DF),
	})
	return t
}

func subgroupTable(subgroups []analysis.SubgroupComparison) Table {
	t := Table{
		Name:    "subgroup_fits",
		Title:   "Subgroup regressions: first-year grade on admission grade",
		Headers: []string{"key", "level", "n", "slope", "p_value", "r2", "note"},
	}
	for _, sg := range subgroups {
		for _, g := range sg.Groups {
			t.Rows = append(t.Rows, subgroupRow(sg.Key, g.Level, g.N, g.Fit))
		}
		overallN := 0
		if sg.Overall.OK() {
			overallN = sg.Overall.Result.N
		}
		t.Rows = append(t.Rows, subgroupRow(sg.Key, "(overall)", overallN, sg.Overall))
	}
	return t
}

func subgroupRow(key, level string, n int, fit analysis.FitOutcome) []string {
	if !fit.OK() {
		return []string{key, level, strconv.Itoa(n), "", "", "", fit.Err}
	}
	return []string{
		key,
		level,
		strconv.Itoa(n),
		formatFloat(fit.Result.Slope.Estimate),
		formatPValue(fit.Result.Slope.PValue),
		formatFloat(fit.Result.R2),
		"",
	}
}

// histogramGrid is the 2x2 grid of grade histograms.
func histogramGrid(histograms []analysis.Histogram) Figure {
	return Figure{
		Name:       "grade_histograms",
		Type:       "histogram_grid",
		Title:      "Grade distributions",
		Histograms: histograms,
	}
}

func scatterWithFit(name, title string, x, y analysis.NumericColumn, fit analysis.FitOutcome, records []dataset.StudentRecord) Figure {
	fig := Figure{
		Name:   name,
		Type:   "scatter_fit",
		Title:  title,
		XLabel: x.Name,
		YLabel: y.Name,
		Series: []Series{pointSeries("all", defaultColors[0], records, x, y)},
	}
	if fit.OK() {
		fig.Lines = append(fig.Lines, FitLine{
			Name:      fit.Label,
			Slope:     fit.Result.Slope.Estimate,
			Intercept: fit.Result.Intercept.Estimate,
			Color:     overallLineColor,
		})
	}
	return fig
}

// subgroupScatter colors the scatter by subgroup level and overlays the
// per-level fitted lines plus the overall trend.
func subgroupScatter(sg analysis.SubgroupComparison, records []dataset.StudentRecord) Figure {
	key := keyByName(sg.Key)

	fig := Figure{
		Name:   fmt.Sprintf("subgroup_%s_scatter", sg.Key),
		Type:   "scatter_fit",
		Title:  fmt.Sprintf("First-year grade vs admission grade by %s", sg.Key),
		XLabel: analysis.ColAdmissionGrade.Name,
		YLabel: analysis.ColFirstYearGrade.Name,
	}

	parts := analysis.Split(records, key)
	for i, g := range sg.Groups {
		color := defaultColors[i%len(defaultColors)]
		fig.Series = append(fig.Series, pointSeries(g.Level, color,
			parts[g.Level], analysis.ColAdmissionGrade, analysis.ColFirstYearGrade))
		if g.Fit.OK() {
			fig.Lines = append(fig.Lines, FitLine{
				Name:      g.Level,
				Slope:     g.Fit.Result.Slope.Estimate,
				Intercept: g.Fit.Result.Intercept.Estimate,
				Color:     color,
			})
		}
	}

	if sg.Overall.OK() {
		fig.Lines = append(fig.Lines, FitLine{
			Name:      "overall",
			Slope:     sg.Overall.Result.Slope.Estimate,
			Intercept: sg.Overall.Result.Intercept.Estimate,
			Color:     overallLineColor,
		})
	}
	return fig
}

func pointSeries(name, color string, records []dataset.StudentRecord, x, y analysis.NumericColumn) Series {
	s := Series{Name: name, Color: color, Points: make([]Point, 0, len(records))}
	for _, r := range records {
		s.Points = append(s.Points, Point{X: x.Value(r), Y: y.Value(r)})
	}
	return s
}

func keyByName(name string) analysis.CategoricalKey {
	switch name {
	case analysis.KeyScholarship.Name:
		return analysis.KeyScholarship
	case analysis.KeyAttendance.Name:
		return analysis.KeyAttendance
	default:
		return analysis.KeyGender
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func formatPValue(p float64) string {
	if p < 0.001 {
		return "<0.001"
	}
	return strconv.FormatFloat(p, 'f', 4, 64)
}
