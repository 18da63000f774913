// Package ingest accepts uploaded employee CSV files and decodes them into candidate rows.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	apperrors "employee-records/internal/errors"
	"employee-records/internal/validation"

	"github.com/gocarina/gocsv"
)

// RequiredColumns are the header columns every uploaded file must carry
var RequiredColumns = []string{"name", "email", "salary"}

var utf8BOM = []byte("\xef\xbb\xbf")

// Row is one decoded data row of an uploaded file
type Row struct {
	Name   string `csv:"name"`
	Email  string `csv:"email"`
	Salary string `csv:"salary"`

	// Line is the 1-based line number of the row in the file, header included
	Line int `csv:"-"`
}

// Input converts the row into raw fields for the validation layer
func (r *Row) Input() *validation.EmployeeInput {
	return &validation.EmployeeInput{
		Name:   r.Name,
		Email:  r.Email,
		Salary: validation.NumericString(r.Salary),
	}
}

// ExportRow is one line of an employee CSV export
type ExportRow struct {
	ID     uint   `csv:"id"`
	Name   string `csv:"name"`
	Email  string `csv:"email"`
	Salary string `csv:"salary"`
}

// CheckFilename accepts only non-empty names with a .csv extension (any case)
func CheckFilename(filename string) error {
	if filename == "" {
		return apperrors.ErrEmptyFilename
	}
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || !strings.EqualFold(filename[dot+1:], "csv") {
		return apperrors.ErrUnsupportedFormat
	}
	return nil
}

// ParseCSV decodes every data row of r. The header must name all RequiredColumns;
// other columns are ignored.
func ParseCSV(r io.Reader) ([]*Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedCSV, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: file is empty", apperrors.ErrMalformedCSV)
	}

	records, lines, err := readRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedCSV, err)
	}
	if missing := missingColumns(records[0]); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s) %s", apperrors.ErrMalformedCSV, strings.Join(missing, ", "))
	}

	rows := []*Row{}
	if err := gocsv.UnmarshalCSV(&recordSet{records: records}, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedCSV, err)
	}
	for i, row := range rows {
		row.Line = lines[i+1]
	}
	return rows, nil
}

// readRecords reads every record of data along with the physical line each one
// starts on. Blank lines and quoted line breaks are accounted for.
func readRecords(data []byte) ([][]string, []int, error) {
	r := csv.NewReader(bytes.NewReader(data))

	var records [][]string
	var lines []int
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := r.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("file has no header")
	}
	return records, lines, nil
}

// recordSet replays already-read records to gocsv
type recordSet struct {
	records [][]string
	next    int
}

func (s *recordSet) Read() ([]string, error) {
	if s.next >= len(s.records) {
		return nil, io.EOF
	}
	record := s.records[s.next]
	s.next++
	return record, nil
}

func (s *recordSet) ReadAll() ([][]string, error) {
	rest := s.records[s.next:]
	s.next = len(s.records)
	return rest, nil
}

// WriteCSV writes rows with an id,name,email,salary header
func WriteCSV(w io.Writer, rows []*ExportRow) error {
	if len(rows) == 0 {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"id", "name", "email", "salary"}); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}
	return gocsv.Marshal(rows, w)
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
