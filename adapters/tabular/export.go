package tabular

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"viromex/domain/taxa"
	"viromex/internal/errors"
)

// AnnotatedHeaders is the column order of the annotated table export. The
// first two columns keep the input schema so an export can be re-uploaded
// and re-annotated to the identical result.
var AnnotatedHeaders = []string{
	"Taxon",
	"Count",
	"Family",
	"Virus_Type",
	"Host_Category",
	"Host_Confidence",
	"OneHealth_Relevance",
	"Spillover_Potential",
}

func annotatedRow(rec taxa.AnnotatedRecord) []string {
	return []string{
		rec.Name,
		strconv.Itoa(rec.Count),
		rec.Family,
		string(rec.VirusType),
		string(rec.Host),
		string(rec.Confidence),
		string(rec.OneHealth),
		string(rec.Spillover),
	}
}

// WriteAnnotatedCSV streams the annotated table as CSV.
func WriteAnnotatedCSV(w io.Writer, records []taxa.AnnotatedRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(AnnotatedHeaders); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}
	for _, rec := range records {
		if err := writer.Write(annotatedRow(rec)); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// WriteAnnotatedXLSX writes the annotated table as an Excel workbook.
func WriteAnnotatedXLSX(w io.Writer, records []taxa.AnnotatedRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Annotated"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "failed to rename sheet")
	}

	header := make([]interface{}, len(AnnotatedHeaders))
	for i, h := range AnnotatedHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write header row")
	}

	for i, rec := range records {
		row := annotatedRow(rec)
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		// Counts as numbers so spreadsheet sorting behaves.
		cells[1] = rec.Count

		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "failed to compute cell address")
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return errors.Wrap(err, "failed to write data row")
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}
