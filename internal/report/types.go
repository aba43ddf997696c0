package report

import (
	"time"

	"github.com/lev-laptinov/DS-Project-2/internal/analysis"
)

// Metadata identifies one report run.
type Metadata struct {
	RunID        string    `json:"run_id"`
	GeneratedAt  time.Time `json:"generated_at"`
	DatasetPath  string    `json:"dataset_path"`
	RowsLoaded   int       `json:"rows_loaded"`
	RowsRetained int       `json:"rows_retained"`
}

// Table is a rendered-ready table of strings. The statistics themselves
// live in analysis.Result; tables are the presentation projection of them.
type Table struct {
	Name    string     `json:"name"`
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Point is one scatter point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is one named, colored point set of a scatter figure.
type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// FitLine is a fitted straight line drawn over a scatter.
type FitLine struct {
	Name      string  `json:"name"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Color     string  `json:"color"`
}

// Figure is a declarative figure specification. The core never renders;
// an external renderer consumes these.
type Figure struct {
	Name       string               `json:"name"`
	Type       string               `json:"type"` // "histogram_grid" or "scatter_fit"
	Title      string               `json:"title"`
	XLabel     string               `json:"x_label,omitempty"`
	YLabel     string               `json:"y_label,omitempty"`
	Histograms []analysis.Histogram `json:"histograms,omitempty"`
	Series     []Series             `json:"series,omitempty"`
	Lines      []FitLine            `json:"lines,omitempty"`
}

// Bundle is the complete report: everything the external renderer needs.
type Bundle struct {
	Meta      Metadata `json:"meta"`
	Tables    []Table  `json:"tables"`
	Figures   []Figure `json:"figures"`
	Narrative string   `json:"narrative,omitempty"`
}
