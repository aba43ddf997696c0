package analysis

import (
	"github.com/lev-laptinov/DS-Project-2/internal/dataset"
)

// NumericColumn binds a stable column name to its strongly-typed accessor.
// The statistics engine works on extracted float slices, never on
// string-indexed lookups.
type NumericColumn struct {
	Name  string
	Value func(dataset.StudentRecord) float64
}

// CategoricalKey is a two-level partition key for subgroup decomposition.
type CategoricalKey struct {
	Name   string
	Levels [2]string
	Level  func(dataset.StudentRecord) string
}

// The projected numeric columns of the working table.
var (
	ColAdmissionGrade = NumericColumn{
		Name:  "admission_grade",
		Value: func(r dataset.StudentRecord) float64 { return r.AdmissionGrade },
	}
	ColPrevQualGrade = NumericColumn{
		Name:  "previous_qualification_grade",
		Value: func(r dataset.StudentRecord) float64 { return r.PrevQualGrade },
	}
	ColFirstSemGrade = NumericColumn{
		Name:  "first_sem_grade",
		Value: func(r dataset.StudentRecord) float64 { return r.FirstSemGrade },
	}
	ColSecondSemGrade = NumericColumn{
		Name:  "second_sem_grade",
		Value: func(r dataset.StudentRecord) float64 { return r.SecondSemGrade },
	}
	ColFirstYearGrade = NumericColumn{
		Name:  "first_year_grade",
		Value: func(r dataset.StudentRecord) float64 { return r.FirstYearGrade },
	}
	ColAdmissionGradeSquared = NumericColumn{
		Name:  "admission_grade_squared",
		Value: func(r dataset.StudentRecord) float64 { return r.AdmissionGradeSquared },
	}
)

// The two-level categorical keys of the working table.
var (
	KeyGender = CategoricalKey{
		Name:   "gender",
		Levels: [2]string{string(dataset.GenderMale), string(dataset.GenderFemale)},
		Level:  func(r dataset.StudentRecord) string { return string(r.Gender) },
	}
	KeyScholarship = CategoricalKey{
		Name:   "scholarship_holder",
		Levels: [2]string{string(dataset.ScholarshipYes), string(dataset.ScholarshipNo)},
		Level:  func(r dataset.StudentRecord) string { return string(r.Scholarship) },
	}
	KeyAttendance = CategoricalKey{
		Name:   "attendance_type",
		Levels: [2]string{string(dataset.AttendanceDaytime), string(dataset.AttendanceEvening)},
		Level:  func(r dataset.StudentRecord) string { return string(r.AttendanceType) },
	}
)

// FitSpec names one regression of the analysis plan.
type FitSpec struct {
	Response  NumericColumn
	Predictor NumericColumn
}

// CorrelationPair names one Pearson correlation of the analysis plan.
type CorrelationPair struct {
	X NumericColumn
	Y NumericColumn
}

// Plan is the fixed analysis plan: a static set of comparisons, not a
// user-configurable query language.
type Plan struct {
	SummaryColumns   []NumericColumn
	HistogramColumns []NumericColumn
	Correlations     []CorrelationPair
	LinearFit        FitSpec
	QuadraticFit     FitSpec
	SubgroupKeys     []CategoricalKey
	SubgroupFit      FitSpec
}

// DefaultPlan returns the analysis plan of the report.
func DefaultPlan() Plan {
	return Plan{
		SummaryColumns: []NumericColumn{
			ColAdmissionGrade,
			ColPrevQualGrade,
			ColFirstSemGrade,
			ColSecondSemGrade,
			ColFirstYearGrade,
		},
		HistogramColumns: []NumericColumn{
			ColAdmissionGrade,
			ColPrevQualGrade,
			ColFirstSemGrade,
			ColSecondSemGrade,
		},
		Correlations: []CorrelationPair{
			{X: ColAdmissionGrade, Y: ColFirstSemGrade},
			{X: ColAdmissionGrade, Y: ColSecondSemGrade},
			{X: ColAdmissionGrade, Y: ColPrevQualGrade},
		},
		LinearFit: FitSpec{
			Response:  ColFirstYearGrade,
			Predictor: ColAdmissionGrade,
		},
		// A one-term regression on the pre-squared column, not poly(x, 2).
		QuadraticFit: FitSpec{
			Response:  ColPrevQualGrade,
			Predictor: ColAdmissionGradeSquared,
		},
		SubgroupKeys: []CategoricalKey{
			KeyGender,
			KeyScholarship,
			KeyAttendance,
		},
		SubgroupFit: FitSpec{
			Response:  ColFirstYearGrade,
			Predictor: ColAdmissionGrade,
		},
	}
}

// Extract pulls the column's values out of the working table, in order.
func Extract(records []dataset.StudentRecord, col NumericColumn) []float64 {
	xs := make([]float64, len(records))
	for i, r := range records {
		xs[i] = col.Value(r)
	}
	return xs
}
