package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

// WriteWorkbook writes the whole report bundle as one Excel workbook with a
// sheet per table plus a metadata sheet.
func WriteWorkbook(path string, bundle *Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeMetaSheet(f, bundle.Meta); err != nil {
		return err
	}

	for _, table := range bundle.Tables {
		if err := writeTableSheet(f, table); err != nil {
			return err
		}
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return apperrors.NewStorageError("failed to drop default sheet", err)
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save workbook", err).
			WithContext("path", path)
	}
	return nil
}

func writeMetaSheet(f *excelize.File, meta Metadata) error {
	const sheet = "run"
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.NewStorageError("failed to create sheet", err)
	}

	rows := [][]interface{}{
		{"run_id", meta.RunID},
		{"generated_at", meta.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"dataset", meta.DatasetPath},
		{"rows_loaded", meta.RowsLoaded},
		{"rows_retained", meta.RowsRetained},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return apperrors.NewStorageError("failed to write metadata row", err)
		}
	}
	return nil
}

func writeTableSheet(f *excelize.File, table Table) error {
	sheet := table.Name
	if len(sheet) > 31 { // Excel's sheet name limit
		sheet = sheet[:31]
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.NewStorageError("failed to create sheet", err).
			WithContext("sheet", sheet)
	}

	header := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return apperrors.NewStorageError("failed to write header row", err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return apperrors.NewStorageError("failed to write data row", err).
				WithContext("sheet", sheet)
		}
	}
	return nil
}
