package analysis

import (
	"github.com/lev-laptinov/DS-Project-2/internal/dataset"
)

// Split partitions the working table by a two-level categorical key.
// The recodings are total and binary, so every record lands in exactly one
// sub-table, in its original order; the union of the two sub-tables is the
// input table.
func Split(records []dataset.StudentRecord, key CategoricalKey) map[string][]dataset.StudentRecord {
	parts := map[string][]dataset.StudentRecord{
		key.Levels[0]: {},
		key.Levels[1]: {},
	}

	for _, r := range records {
		parts[key.Level(r)] = append(parts[key.Level(r)], r)
	}

	return parts
}
