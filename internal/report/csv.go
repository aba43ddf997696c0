package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

// CSVWriter writes report tables as CSV files.
type CSVWriter struct {
	dir string
	bom bool
}

// NewCSVWriter creates a writer targeting the given directory. When bom is
// set, files start with a UTF-8 BOM so spreadsheet tools recognize the
// encoding.
func NewCSVWriter(dir string, bom bool) *CSVWriter {
	return &CSVWriter{dir: dir, bom: bom}
}

// WriteTable writes one table as <name>.csv in the writer's directory.
func (w *CSVWriter) WriteTable(table Table) (string, error) {
	path := filepath.Join(w.dir, table.Name+".csv")

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", apperrors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", apperrors.NewStorageError("failed to create CSV file", err).
			WithContext("path", path)
	}
	defer file.Close()

	if w.bom {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", apperrors.NewStorageError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(table.Headers); err != nil {
		return "", apperrors.NewStorageError("failed to write headers", err)
	}
	for i, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return "", apperrors.NewStorageError(
				fmt.Sprintf("failed to write row %d", i), err).
				WithContext("table", table.Name)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", apperrors.NewStorageError("failed to flush CSV", err)
	}

	slog.Debug("wrote table", "path", path, "rows", len(table.Rows))
	return path, nil
}

// WriteAll writes every table of the bundle and returns the file paths.
func (w *CSVWriter) WriteAll(bundle *Bundle) ([]string, error) {
	paths := make([]string, 0, len(bundle.Tables))
	for _, table := range bundle.Tables {
		path, err := w.WriteTable(table)
		if err != nil {
			return nil, fmt.Errorf("write table %s: %w", table.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
