package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lev-laptinov/DS-Project-2/internal/analysis"
	"github.com/lev-laptinov/DS-Project-2/internal/config"
	"github.com/lev-laptinov/DS-Project-2/internal/dataset"
	"github.com/lev-laptinov/DS-Project-2/internal/infrastructure"
	"github.com/lev-laptinov/DS-Project-2/internal/report"
)

func main() {
	inputPath := flag.String("input", "", "path to the student records dataset (.csv or .xlsx)")
	outputDir := flag.String("out", "", "output directory for the report bundle (defaults to reports)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// CLI flags override file and environment configuration.
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if err := cfg.EnsureOutputDirs(); err != nil {
		logger.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Load and prepare the working table.
	logger.Info("Loading dataset", "path", cfg.Input.Path)
	rows, err := dataset.Load(cfg.Input.Path, rune(cfg.Input.Delimiter[0]))
	if err != nil {
		logger.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("Loaded dataset", "rows", len(rows))

	filtered, err := dataset.FilterPositive(rows)
	if err != nil {
		logger.Error("Positivity filter removed every row",
			"error", err,
			"hint", "Check that grade columns are positive in the source data")
		os.Exit(1)
	}
	logger.Info("Applied positivity filter",
		"kept", len(filtered),
		"dropped", len(rows)-len(filtered))

	dataset.AuditCodes(logger, filtered)
	records := dataset.TransformAll(filtered)

	// Run the fixed analysis plan.
	runner := analysis.NewRunner(analysis.DefaultPlan(), cfg.Analysis.Concurrency, logger)
	result, err := runner.Run(ctx, records)
	if err != nil {
		logger.Error("Analysis failed", "error", err)
		os.Exit(1)
	}

	meta := report.Metadata{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now(),
		DatasetPath:  cfg.Input.Path,
		RowsLoaded:   len(rows),
		RowsRetained: len(records),
	}
	bundle := report.Build(meta, result, records)

	// Write the report artifacts.
	if cfg.Report.CSV {
		writer := report.NewCSVWriter(cfg.TablesDir(), cfg.Report.BOMPrefix)
		paths, err := writer.WriteAll(bundle)
		if err != nil {
			logger.Error("Failed to write CSV tables", "error", err)
			os.Exit(1)
		}
		logger.Info("Wrote CSV tables", "count", len(paths), "dir", cfg.TablesDir())
	}

	if cfg.Report.Excel {
		workbookPath := filepath.Join(cfg.Output.Dir,
			fmt.Sprintf("eda_report_%s.xlsx", meta.GeneratedAt.Format("20060102")))
		if err := report.WriteWorkbook(workbookPath, bundle); err != nil {
			logger.Error("Failed to write Excel workbook", "error", err)
			os.Exit(1)
		}
		logger.Info("Wrote Excel workbook", "path", workbookPath)
	}

	if cfg.Report.Figures {
		paths, err := report.WriteFigures(cfg.FiguresDir(), bundle.Figures)
		if err != nil {
			logger.Error("Failed to write figure specs", "error", err)
			os.Exit(1)
		}
		logger.Info("Wrote figure specs", "count", len(paths), "dir", cfg.FiguresDir())
	}

	if cfg.Report.Narrative {
		narrativePath := filepath.Join(cfg.Output.Dir, "narrative.txt")
		if err := report.WriteNarrative(narrativePath, bundle.Narrative); err != nil {
			logger.Error("Failed to write narrative", "error", err)
			os.Exit(1)
		}
		logger.Info("Wrote narrative", "path", narrativePath)
	}

	logger.Info("Report generated successfully",
		"run_id", meta.RunID,
		"rows_retained", meta.RowsRetained,
		"degenerate_computations", result.Degeneracies())

	printSummary(meta, result)
}

// printSummary prints the headline numbers to stdout for a quick read
// without opening the report files.
func printSummary(meta report.Metadata, result *analysis.Result) {
	fmt.Println("\n=== STUDENT ENROLLMENT EDA ===")
	fmt.Printf("Rows: %d loaded, %d retained\n", meta.RowsLoaded, meta.RowsRetained)

	fmt.Println("\nCorrelations (Pearson):")
	for _, c := range result.Correlations {
		if c.Err != "" {
			fmt.Printf("  %-28s vs %-28s  n/a (%s)\n", c.X, c.Y, c.Err)
			continue
		}
		fmt.Printf("  %-28s vs %-28s  r = %+.3f (%d pairs)\n", c.X, c.Y, c.R, c.Pairs)
	}

	for _, fit := range []analysis.FitOutcome{result.LinearFit, result.QuadraticFit} {
		if !fit.OK() {
			fmt.Printf("\n%s: not computable (%s)\n", fit.Label, fit.Err)
			continue
		}
		fmt.Printf("\n%s:\n", fit.Label)
		fmt.Printf("  slope = %.4f  p = %.4g  R2 = %.4f  n = %d\n",
			fit.Result.Slope.Estimate, fit.Result.Slope.PValue, fit.Result.R2, fit.Result.N)
	}

	fmt.Println("\nSubgroup slopes (first_year_grade ~ admission_grade):")
	for _, sg := range result.Subgroups {
		fmt.Printf("  by %s:\n", sg.Key)
		for _, g := range sg.Groups {
			if !g.Fit.OK() {
				fmt.Printf("    %-10s n/a (%s)\n", g.Level, g.Fit.Err)
				continue
			}
			fmt.Printf("    %-10s slope = %.4f (n = %d)\n", g.Level, g.Fit.Result.Slope.Estimate, g.N)
		}
		if sg.Overall.OK() {
			fmt.Printf("    %-10s slope = %.4f\n", "(overall)", sg.Overall.Result.Slope.Estimate)
		}
	}
}
