package dataset

// AttendanceType is the recoded daytime/evening attendance label
type AttendanceType string

const (
	AttendanceDaytime AttendanceType = "daytime"
	AttendanceEvening AttendanceType = "evening"
)

// Gender is the recoded gender label
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Scholarship is the recoded scholarship holder label
type Scholarship string

const (
	ScholarshipYes Scholarship = "yes"
	ScholarshipNo  Scholarship = "no"
)

// RawRow is one projected row of the source table, before recoding.
// Categorical columns still carry their raw numeric codes.
type RawRow struct {
	AttendanceCode  int
	PrevQualGrade   float64
	AdmissionGrade  float64
	GenderCode      int
	ScholarshipCode int
	AgeAtEnrollment int
	FirstSemGrade   float64
	SecondSemGrade  float64
}

// HasPositiveGrades reports whether all four filtered grade fields are
// strictly positive. Rows failing this predicate are dropped before any
// statistic is computed.
func (r RawRow) HasPositiveGrades() bool {
	return r.AdmissionGrade > 0 && r.PrevQualGrade > 0 &&
		r.FirstSemGrade > 0 && r.SecondSemGrade > 0
}

// StudentRecord is one row of the working table: filtered, recoded and
// widened with the derived columns. Records are never mutated after
// creation.
type StudentRecord struct {
	AttendanceType        AttendanceType
	PrevQualGrade         float64
	AdmissionGrade        float64
	Gender                Gender
	Scholarship           Scholarship
	AgeAtEnrollment       int
	FirstSemGrade         float64
	SecondSemGrade        float64
	FirstYearGrade        float64
	AdmissionGradeSquared float64
}
