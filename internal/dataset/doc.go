// Package dataset loads and prepares the student enrollment working table.
//
// The pipeline through this package is strict and pure:
//
//	CSV/XLSX file → Load → []RawRow → FilterPositive → TransformAll → []StudentRecord
//
// Load applies the fixed renaming table from the published dataset headers
// to stable column identifiers, so nothing downstream ever touches source
// header strings. FilterPositive drops rows whose grade fields are not
// strictly positive, preserving order. TransformAll recodes the binary
// categoricals and derives the first-year grade and squared admission
// grade. No function mutates its input; each stage returns a new value.
//
// Example usage:
//
//	rows, err := dataset.Load("students.csv", ';')
//	if err != nil {
//	    log.Fatal(err)
//	}
//	kept, err := dataset.FilterPositive(rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	records := dataset.TransformAll(kept)
package dataset
