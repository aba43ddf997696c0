package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

// Load reads the student dataset at path, choosing the parser by file
// extension. Delimited text is the primary format; .xlsx workbooks holding
// the same table are also accepted.
func Load(path string, delimiter rune) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return LoadCSV(path, delimiter)
	}
}

// LoadCSV reads a delimited text file with a header row and projects the
// eight working columns. The published dataset uses ';' as its delimiter.
// Ragged rows or non-numeric values in numeric columns abort the load with
// a parsing error.
func LoadCSV(path string, delimiter rune) ([]RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open dataset file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	// FieldsPerRecord stays at its default so the reader rejects ragged rows.

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read delimited records", err).
			WithContext("path", path)
	}

	return parseRows(records, path)
}

// LoadXLSX reads the first sheet of a workbook holding the same table.
func LoadXLSX(path string) ([]RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil).
			WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read worksheet rows", err).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}

	return parseRows(rows, path)
}

// parseRows maps the header, then parses each data row into a RawRow.
func parseRows(records [][]string, path string) ([]RawRow, error) {
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("dataset is empty", nil).
			WithContext("path", path)
	}

	indices, missing := mapHeader(records[0])
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, col := range missing {
			names[i] = string(col)
		}
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("required columns not found: %s", strings.Join(names, ", ")), nil).
			WithContext("path", path)
	}

	maxIdx := 0
	for _, idx := range indices {
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	rows := make([]RawRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 2 // 1-based, counting the header

		if len(record) <= maxIdx {
			return nil, apperrors.NewParsingError("row has too few fields", nil).
				WithContext("path", path).
				WithContext("row", rowNum)
		}

		row, err := parseRow(record, indices)
		if err != nil {
			return nil, apperrors.NewParsingError("failed to parse row", err).
				WithContext("path", path).
				WithContext("row", rowNum)
		}
		rows = append(rows, row)
	}

	slog.Debug("dataset loaded", "path", path, "rows", len(rows))
	return rows, nil
}

func parseRow(record []string, indices map[Column]int) (RawRow, error) {
	var row RawRow
	var err error

	if row.AttendanceCode, err = parseInt(record[indices[ColAttendanceType]], ColAttendanceType); err != nil {
		return RawRow{}, err
	}
	if row.PrevQualGrade, err = parseFloat(record[indices[ColPrevQualGrade]], ColPrevQualGrade); err != nil {
		return RawRow{}, err
	}
	if row.AdmissionGrade, err = parseFloat(record[indices[ColAdmissionGrade]], ColAdmissionGrade); err != nil {
		return RawRow{}, err
	}
	if row.GenderCode, err = parseInt(record[indices[ColGender]], ColGender); err != nil {
		return RawRow{}, err
	}
	if row.ScholarshipCode, err = parseInt(record[indices[ColScholarship]], ColScholarship); err != nil {
		return RawRow{}, err
	}
	if row.AgeAtEnrollment, err = parseInt(record[indices[ColAge]], ColAge); err != nil {
		return RawRow{}, err
	}
	if row.FirstSemGrade, err = parseFloat(record[indices[ColFirstSemGrade]], ColFirstSemGrade); err != nil {
		return RawRow{}, err
	}
	if row.SecondSemGrade, err = parseFloat(record[indices[ColSecondSemGrade]], ColSecondSemGrade); err != nil {
		return RawRow{}, err
	}

	return row, nil
}

func parseFloat(value string, col Column) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not numeric", col, value)
	}
	return v, nil
}

func parseInt(value string, col Column) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not an integer", col, value)
	}
	return v, nil
}
