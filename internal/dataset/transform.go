package dataset

import "log/slog"

// Recoding sentinel: raw code 1 maps to the positive label of each binary
// categorical; every other code falls into the default label. This matches
// the published dataset's encoding (1/0 or 1/2) and is deliberately total.

// RecodeAttendance maps a raw attendance code to its label.
func RecodeAttendance(code int) AttendanceType {
	if code == 1 {
		return AttendanceDaytime
	}
	return AttendanceEvening
}

// RecodeGender maps a raw gender code to its label.
func RecodeGender(code int) Gender {
	if code == 1 {
		return GenderMale
	}
	return GenderFemale
}

// RecodeScholarship maps a raw scholarship code to its label.
func RecodeScholarship(code int) Scholarship {
	if code == 1 {
		return ScholarshipYes
	}
	return ScholarshipNo
}

// Transform recodes one filtered row and derives the widened columns.
// Pure and total: deterministic, no side effects, never fails.
func Transform(row RawRow) StudentRecord {
	return StudentRecord{
		AttendanceType:        RecodeAttendance(row.AttendanceCode),
		PrevQualGrade:         row.PrevQualGrade,
		AdmissionGrade:        row.AdmissionGrade,
		Gender:                RecodeGender(row.GenderCode),
		Scholarship:           RecodeScholarship(row.ScholarshipCode),
		AgeAtEnrollment:       row.AgeAtEnrollment,
		FirstSemGrade:         row.FirstSemGrade,
		SecondSemGrade:        row.SecondSemGrade,
		FirstYearGrade:        (row.FirstSemGrade + row.SecondSemGrade) / 2,
		AdmissionGradeSquared: row.AdmissionGrade * row.AdmissionGrade,
	}
}

// TransformAll transforms every row, preserving order.
func TransformAll(rows []RawRow) []StudentRecord {
	records := make([]StudentRecord, len(rows))
	for i, row := range rows {
		records[i] = Transform(row)
	}
	return records
}

// AuditCodes logs a warning for every categorical code outside the expected
// binary encodings. The recoding itself stays total (unexpected codes land
// in the default label), but the conflation is no longer silent.
func AuditCodes(logger *slog.Logger, rows []RawRow) {
	if logger == nil {
		logger = slog.Default()
	}

	counts := map[Column]int{}
	for _, row := range rows {
		if row.AttendanceCode != 1 && row.AttendanceCode != 0 {
			counts[ColAttendanceType]++
		}
		if row.GenderCode != 1 && row.GenderCode != 0 {
			counts[ColGender]++
		}
		if row.ScholarshipCode != 1 && row.ScholarshipCode != 0 {
			counts[ColScholarship]++
		}
	}

	for col, n := range counts {
		logger.Warn("unexpected categorical codes mapped to default label",
			"column", string(col),
			"rows", n)
	}
}
