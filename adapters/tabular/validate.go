package tabular

import (
	"log"
	"math"
	"strconv"

	"viromex/domain/taxa"
	"viromex/internal/errors"
)

// Required column headers for a count table.
const (
	ColumnTaxon = "Taxon"
	ColumnCount = "Count"
)

// LoadReport is the outcome of validating a raw table: the clean records in
// input order plus bookkeeping about what was dropped along the way.
type LoadReport struct {
	Records     []taxa.TaxonRecord
	TotalRows   int
	DroppedRows int
}

// ValidateCounts checks the required schema and coerces rows into
// TaxonRecords. Rows with an empty taxon, an unparsable count, or a count
// of zero or less are dropped silently and tallied; a missing required
// column is a SchemaError and produces no records at all.
func ValidateCounts(table *Table) (*LoadReport, error) {
	taxonIdx := table.Column(ColumnTaxon)
	countIdx := table.Column(ColumnCount)
	if taxonIdx < 0 || countIdx < 0 {
		return nil, errors.SchemaError("table must contain columns: Taxon and Count")
	}

	report := &LoadReport{TotalRows: len(table.Rows)}
	for _, row := range table.Rows {
		rec, ok := coerceRow(row, taxonIdx, countIdx)
		if !ok {
			report.DroppedRows++
			continue
		}
		report.Records = append(report.Records, rec)
	}

	if len(report.Records) == 0 {
		return nil, errors.EmptyInput("no valid rows after validation")
	}

	if report.DroppedRows > 0 {
		log.Printf("[ValidateCounts] Dropped %d of %d rows (unparsable or non-positive counts)",
			report.DroppedRows, report.TotalRows)
	}
	return report, nil
}

func coerceRow(row []string, taxonIdx, countIdx int) (taxa.TaxonRecord, bool) {
	if taxonIdx >= len(row) || countIdx >= len(row) {
		return taxa.TaxonRecord{}, false
	}

	name := row[taxonIdx]
	if name == "" {
		return taxa.TaxonRecord{}, false
	}

	count, ok := coerceCount(row[countIdx])
	if !ok || count <= 0 {
		return taxa.TaxonRecord{}, false
	}

	return taxa.TaxonRecord{Name: name, Count: count}, true
}

// coerceCount parses a count cell. Whole-valued float cells ("4823.0") are
// accepted since spreadsheet exports produce them routinely; fractional
// values truncate toward zero.
func coerceCount(cell string) (int, bool) {
	if cell == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(math.Trunc(f)), true
}
