package tabular

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"viromex/internal/errors"
)

// Table is a raw delimited table: trimmed headers plus string cell rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// DataReader handles reading CSV and Excel count tables.
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewDataReader creates a reader for a file on disk, picking the format
// from the extension. Anything that is not .xlsx is treated as delimited
// text.
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadTable reads the file into a raw Table.
func (r *DataReader) ReadTable() (*Table, error) {
	log.Printf("[DataReader] Reading %s file: %s", r.fileType, r.filePath)

	f, err := os.Open(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(r.filePath)
		}
		return nil, errors.Wrapf(err, "failed to open %s", r.filePath)
	}
	defer f.Close()

	return ReadTableFrom(f, r.filePath)
}

// ReadTableFrom reads a raw Table from a stream. The filename is only used
// to pick the format, so it works for multipart uploads as well as files.
func ReadTableFrom(src io.Reader, filename string) (*Table, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".xlsx" {
		return readExcelTable(src)
	}
	return readCSVTable(src)
}

func readCSVTable(src io.Reader) (*Table, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated, validated later
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV data")
	}
	return tableFromRows(rows)
}

func readExcelTable(src io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel data")
	}
	defer f.Close()

	// First sheet regardless of its name; Kraken exports rarely use "Sheet1".
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.SchemaError("Excel file contains no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	return tableFromRows(rows)
}

func tableFromRows(rows [][]string) (*Table, error) {
	if len(rows) < 2 {
		return nil, errors.EmptyInput("table must have a header row and at least one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		trimmed := make([]string, len(row))
		for j, cell := range row {
			trimmed[j] = strings.TrimSpace(cell)
		}
		dataRows = append(dataRows, trimmed)
	}

	log.Printf("[DataReader] Table processed (%d columns, %d rows)", len(headers), len(dataRows))
	return &Table{Headers: headers, Rows: dataRows}, nil
}

// Column returns the index of a header, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}
