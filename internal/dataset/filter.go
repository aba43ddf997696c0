package dataset

import (
	apperrors "github.com/lev-laptinov/DS-Project-2/internal/errors"
)

// FilterPositive drops every row where any of the four grade fields
// (admission, previous qualification, first semester, second semester) is
// not strictly positive. Input order is preserved and the input slice is
// never modified. An error is returned when no rows survive, since every
// downstream statistic would be undefined.
func FilterPositive(rows []RawRow) ([]RawRow, error) {
	kept := make([]RawRow, 0, len(rows))
	for _, row := range rows {
		if row.HasPositiveGrades() {
			kept = append(kept, row)
		}
	}

	if len(kept) == 0 {
		return nil, apperrors.NewFilterError("positivity filter removed every row").
			WithContext("input_rows", len(rows))
	}

	return kept, nil
}
