package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

const testHeader = "Daytime/evening attendance\t;Previous qualification (grade);Admission grade;Gender;Scholarship holder;Age at enrollment;Curricular units 1st sem (grade);Curricular units 2nd sem (grade)"

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	content := testHeader + "\n" +
		"1;130.5;120;1;0;19;13.2;14.1\n" +
		"0;150;140.25;0;1;22;15;15\n"
	path := writeTempCSV(t, content)

	rows, err := LoadCSV(path, ';')
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, RawRow{
		AttendanceCode:  1,
		PrevQualGrade:   130.5,
		AdmissionGrade:  120,
		GenderCode:      1,
		ScholarshipCode: 0,
		AgeAtEnrollment: 19,
		FirstSemGrade:   13.2,
		SecondSemGrade:  14.1,
	}, rows[0])

	assert.Equal(t, 140.25, rows[1].AdmissionGrade)
	assert.Equal(t, 22, rows[1].AgeAtEnrollment)
}

func TestLoadCSV_HeaderWhitespaceNormalized(t *testing.T) {
	// The published dataset carries a trailing tab on the attendance header;
	// the fixture above includes it and the row above proves it maps.
	content := testHeader + "\n1;1;1;1;1;20;1;1\n"
	path := writeTempCSV(t, content)

	rows, err := LoadCSV(path, ';')
	require.NoError(t, err)
	assert.Equal(t, 1, rows[0].AttendanceCode)
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	content := "Admission grade;Gender\n120;1\n"
	path := writeTempCSV(t, content)

	_, err := LoadCSV(path, ';')
	require.Error(t, err)
	assert.True(t, apperrors.IsParsing(err))
	assert.Contains(t, err.Error(), "previous_qualification_grade")
}

func TestLoadCSV_RaggedRow(t *testing.T) {
	content := testHeader + "\n" +
		"1;130;120;1;0;19;13;14\n" +
		"1;130;120\n"
	path := writeTempCSV(t, content)

	_, err := LoadCSV(path, ';')
	require.Error(t, err)
	assert.True(t, apperrors.IsParsing(err))
}

func TestLoadCSV_NonNumericValue(t *testing.T) {
	content := testHeader + "\n" +
		"1;abc;120;1;0;19;13;14\n"
	path := writeTempCSV(t, content)

	_, err := LoadCSV(path, ';')
	require.Error(t, err)
	assert.True(t, apperrors.IsParsing(err))
	assert.Contains(t, err.Error(), "previous_qualification_grade")
}

func TestLoadCSV_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := LoadCSV(path, ';')
	require.Error(t, err)
	assert.True(t, apperrors.IsParsing(err))
}

func TestLoadCSV_FileNotFound(t *testing.T) {
	_, err := LoadCSV("/nonexistent/students.csv", ';')
	require.Error(t, err)
	assert.True(t, apperrors.IsParsing(err))
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []interface{}{
		"Daytime/evening attendance",
		"Previous qualification (grade)",
		"Admission grade",
		"Gender",
		"Scholarship holder",
		"Age at enrollment",
		"Curricular units 1st sem (grade)",
		"Curricular units 2nd sem (grade)",
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{1, 130.5, 120, 1, 0, 19, 13.2, 14.1}))

	path := filepath.Join(t.TempDir(), "students.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := LoadXLSX(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 120.0, rows[0].AdmissionGrade)
	assert.Equal(t, 130.5, rows[0].PrevQualGrade)
}

func TestLoad_DispatchByExtension(t *testing.T) {
	content := testHeader + "\n1;130;120;1;0;19;13;14\n"
	path := writeTempCSV(t, content)

	rows, err := Load(path, ';')
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
