package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

func validRow() RawRow {
	return RawRow{
		AttendanceCode:  1,
		PrevQualGrade:   130,
		AdmissionGrade:  120,
		GenderCode:      1,
		ScholarshipCode: 0,
		AgeAtEnrollment: 19,
		FirstSemGrade:   13,
		SecondSemGrade:  14,
	}
}

func TestFilterPositive(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawRow)
		kept   bool
	}{
		{"all grades positive", func(r *RawRow) {}, true},
		{"zero admission grade", func(r *RawRow) { r.AdmissionGrade = 0 }, false},
		{"negative admission grade", func(r *RawRow) { r.AdmissionGrade = -5 }, false},
		{"zero previous qualification grade", func(r *RawRow) { r.PrevQualGrade = 0 }, false},
		{"zero first semester grade", func(r *RawRow) { r.FirstSemGrade = 0 }, false},
		{"zero second semester grade", func(r *RawRow) { r.SecondSemGrade = 0 }, false},
		{"barely positive grades", func(r *RawRow) {
			r.AdmissionGrade = 0.001
			r.FirstSemGrade = 0.001
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := validRow()
			tt.mutate(&bad)

			// Pair the row under test with a known-good row so the filter
			// never exhausts the table.
			kept, err := FilterPositive([]RawRow{bad, validRow()})
			require.NoError(t, err)

			if tt.kept {
				assert.Len(t, kept, 2)
			} else {
				assert.Len(t, kept, 1)
			}
		})
	}
}

func TestFilterPositive_ZeroAdmissionAlwaysExcluded(t *testing.T) {
	// Other fields being healthy must not rescue the row.
	row := validRow()
	row.AdmissionGrade = 0
	row.FirstSemGrade = 19.5
	row.SecondSemGrade = 19.8

	kept, err := FilterPositive([]RawRow{row, validRow()})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Greater(t, kept[0].AdmissionGrade, 0.0)
}

func TestFilterPositive_PreservesOrder(t *testing.T) {
	rows := make([]RawRow, 5)
	for i := range rows {
		rows[i] = validRow()
		rows[i].AgeAtEnrollment = 18 + i
	}
	rows[2].FirstSemGrade = 0

	kept, err := FilterPositive(rows)
	require.NoError(t, err)
	require.Len(t, kept, 4)

	ages := []int{kept[0].AgeAtEnrollment, kept[1].AgeAtEnrollment, kept[2].AgeAtEnrollment, kept[3].AgeAtEnrollment}
	assert.Equal(t, []int{18, 19, 21, 22}, ages)
}

func TestFilterPositive_DoesNotMutateInput(t *testing.T) {
	rows := []RawRow{validRow(), validRow()}
	rows[0].FirstSemGrade = 0
	before := rows[0]

	_, err := FilterPositive(rows)
	require.NoError(t, err)
	assert.Equal(t, before, rows[0])
}

func TestFilterPositive_Exhaustion(t *testing.T) {
	row := validRow()
	row.AdmissionGrade = 0

	_, err := FilterPositive([]RawRow{row})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFilter))
}

func TestFilterPositive_PropertyAllKeptRowsPositive(t *testing.T) {
	rows := []RawRow{}
	for i := -3; i <= 3; i++ {
		r := validRow()
		r.AdmissionGrade = float64(i) * 40
		r.FirstSemGrade = float64(i)
		rows = append(rows, r)
	}

	kept, err := FilterPositive(rows)
	require.NoError(t, err)
	for _, r := range kept {
		assert.True(t, r.HasPositiveGrades())
	}
}
