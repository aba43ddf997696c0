package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVWriter_WriteTable(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, false)

	table := Table{
		Name:    "correlations",
		Headers: []string{"x", "y", "r"},
		Rows: [][]string{
			{"admission_grade", "first_sem_grade", "0.53"},
			{"admission_grade", "second_sem_grade", "0.49"},
		},
	}

	path, err := writer.WriteTable(table)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "correlations.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "x,y,r", lines[0])
	assert.Equal(t, "admission_grade,first_sem_grade,0.53", lines[1])
}

func TestCSVWriter_BOMPrefix(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, true)

	path, err := writer.WriteTable(Table{Name: "t", Headers: []string{"a"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestCSVWriter_WriteAll(t *testing.T) {
	bundle, _ := testBundle(t)
	writer := NewCSVWriter(t.TempDir(), false)

	paths, err := writer.WriteAll(bundle)
	require.NoError(t, err)
	assert.Len(t, paths, len(bundle.Tables))
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}

func TestWriteWorkbook(t *testing.T) {
	bundle, _ := testBundle(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, WriteWorkbook(path, bundle))
	require.FileExists(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "run")
	assert.Contains(t, sheets, "summary")
	assert.Contains(t, sheets, "correlations")
	assert.NotContains(t, sheets, "Sheet1")

	rows, err := f.GetRows("correlations")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "x", rows[0][0])
	assert.Len(t, rows, 4) // header + 3 correlation pairs
}

func TestWriteFigures(t *testing.T) {
	bundle, _ := testBundle(t)
	dir := t.TempDir()

	paths, err := WriteFigures(dir, bundle.Figures)
	require.NoError(t, err)
	assert.Len(t, paths, len(bundle.Figures))

	data, err := os.ReadFile(filepath.Join(dir, "grade_histograms.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type": "histogram_grid"`)
}

func TestWriteNarrative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "narrative.txt")

	require.NoError(t, WriteNarrative(path, "=== STUDENT ENROLLMENT ANALYSIS ===\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "STUDENT ENROLLMENT ANALYSIS")
}
