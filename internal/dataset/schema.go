package dataset

import "strings"

// Column identifies a projected column of the working table.
type Column string

const (
	ColAttendanceType Column = "attendance_type"
	ColPrevQualGrade  Column = "previous_qualification_grade"
	ColAdmissionGrade Column = "admission_grade"
	ColGender         Column = "gender"
	ColScholarship    Column = "scholarship_holder"
	ColAge            Column = "age_at_enrollment"
	ColFirstSemGrade  Column = "first_sem_grade"
	ColSecondSemGrade Column = "second_sem_grade"
)

// columnMapping is the fixed renaming table from source dataset headers to
// the stable identifiers used everywhere downstream. Applied once at load
// time; the statistics engine never sees source header strings.
var columnMapping = map[string]Column{
	"Daytime/evening attendance":     ColAttendanceType,
	"Previous qualification (grade)": ColPrevQualGrade,
	"Admission grade":                ColAdmissionGrade,
	"Gender":                         ColGender,
	"Scholarship holder":             ColScholarship,
	"Age at enrollment":              ColAge,
	"Curricular units 1st sem (grade)": ColFirstSemGrade,
	"Curricular units 2nd sem (grade)": ColSecondSemGrade,
}

// requiredColumns lists every column the projection needs.
var requiredColumns = []Column{
	ColAttendanceType,
	ColPrevQualGrade,
	ColAdmissionGrade,
	ColGender,
	ColScholarship,
	ColAge,
	ColFirstSemGrade,
	ColSecondSemGrade,
}

// normalizeHeader strips the whitespace some exports carry in header cells.
// The published dataset has a trailing tab on one of its headers.
func normalizeHeader(h string) string {
	return strings.TrimSpace(h)
}

// mapHeader resolves a header row to column indices for the eight projected
// columns. Missing columns are reported by name.
func mapHeader(header []string) (map[Column]int, []Column) {
	indices := make(map[Column]int, len(requiredColumns))
	for i, cell := range header {
		if col, ok := columnMapping[normalizeHeader(cell)]; ok {
			indices[col] = i
		}
	}

	var missing []Column
	for _, col := range requiredColumns {
		if _, ok := indices[col]; !ok {
			missing = append(missing, col)
		}
	}
	return indices, missing
}
