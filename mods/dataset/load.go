package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads a tabular file into a Table, every cell as string.
// The format is chosen by extension: .csv (.txt, .tsv) or .xlsx.
func Load(path string, delimiter rune) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, inputErrorf("cannot open input file %q: %s", path, err.Error())
		}
		defer f.Close()
		return LoadCSV(f, delimiter)
	case ".tsv":
		f, err := os.Open(path)
		if err != nil {
			return nil, inputErrorf("cannot open input file %q: %s", path, err.Error())
		}
		defer f.Close()
		return LoadCSV(f, '\t')
	default:
		return nil, inputErrorf("unsupported input file %q, expect .csv or .xlsx", path)
	}
}

// LoadCSV reads comma (or delimiter) separated rows, first row is the heading.
func LoadCSV(r io.Reader, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, inputErrorf("cannot read heading row: %s", err.Error())
	}
	tbl := NewTable(header)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, inputErrorf("cannot read row %d: %s", tbl.RowCount()+2, err.Error())
		}
		tbl.rows = append(tbl.rows, padRow(fields, len(header)))
	}
	return tbl, nil
}

// LoadXLSX reads the first sheet of an Excel workbook, first row is the heading.
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, inputErrorf("cannot open workbook %q: %s", path, err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, inputErrorf("workbook %q has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, inputErrorf("cannot read sheet %q: %s", sheets[0], err.Error())
	}
	if len(rows) == 0 {
		return nil, inputErrorf("sheet %q is empty", sheets[0])
	}
	tbl := NewTable(rows[0])
	for _, row := range rows[1:] {
		tbl.rows = append(tbl.rows, padRow(row, len(rows[0])))
	}
	return tbl, nil
}

func padRow(fields []string, width int) []any {
	row := make([]any, width)
	for i := 0; i < width; i++ {
		if i < len(fields) {
			row[i] = fields[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
