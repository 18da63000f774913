package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	apperrors "employee-records/internal/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCheckFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     error
	}{
		{"data.csv", nil},
		{"DATA.CSV", nil},
		{"archive.2024.Csv", nil},
		{".csv", nil},
		{"", apperrors.ErrEmptyFilename},
		{"data.txt", apperrors.ErrUnsupportedFormat},
		{"csv", apperrors.ErrUnsupportedFormat},
		{"data.csv.gz", apperrors.ErrUnsupportedFormat},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			err := CheckFilename(tc.filename)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestParseCSV_WellFormed(t *testing.T) {
	input := "name,email,salary\nAlice,alice@x.com,50000\nBob,bob@x.com,60000\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	want := []*Row{
		{Name: "Alice", Email: "alice@x.com", Salary: "50000", Line: 2},
		{Name: "Bob", Email: "bob@x.com", Salary: "60000", Line: 3},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("ParseCSV() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCSV_ColumnOrderAndExtrasIgnored(t *testing.T) {
	input := "\xef\xbb\xbfsalary,department,email,name\n70000,R&D,carol@x.com,Carol\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Carol", rows[0].Name)
	assert.Equal(t, "carol@x.com", rows[0].Email)
	assert.Equal(t, "70000", rows[0].Salary)
}

func TestParseCSV_KeepsMalformedValuesForValidation(t *testing.T) {
	input := "name,email,salary\n,nobody@x.com,abc\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	in := rows[0].Input()
	assert.Equal(t, "", in.Name)
	assert.Equal(t, "abc", string(in.Salary))
}

func TestParseCSV_LineNumbersFollowPhysicalLines(t *testing.T) {
	input := "name,email,salary\n" +
		"Alice,alice@x.com,50000\n" +
		"\n" +
		"\"Bob\nSmith\",bob@x.com,60000\n" +
		"Carol,carol@x.com,abc\n"

	rows, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	want := []*Row{
		{Name: "Alice", Email: "alice@x.com", Salary: "50000", Line: 2},
		{Name: "Bob\nSmith", Email: "bob@x.com", Salary: "60000", Line: 4},
		{Name: "Carol", Email: "carol@x.com", Salary: "abc", Line: 6},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("ParseCSV() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader("name,email,salary\n"))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCSV_Malformed(t *testing.T) {
	tests := map[string]string{
		"empty file":     "",
		"missing column": "name,email\nAlice,alice@x.com\n",
		"ragged row":     "name,email,salary\nAlice,alice@x.com\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			rows, err := ParseCSV(strings.NewReader(input))

			assert.Nil(t, rows)
			assert.True(t, errors.Is(err, apperrors.ErrMalformedCSV), "got %v", err)
		})
	}
}

func TestParseCSV_MissingColumnIsNamed(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("name,mail\nAlice,alice@x.com\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email, salary")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, []*ExportRow{
		{ID: 1, Name: "Alice", Email: "alice@x.com", Salary: "50000"},
		{ID: 2, Name: "Smith, Bob", Email: "bob@x.com", Salary: "60000.5"},
	})

	require.NoError(t, err)
	assert.Equal(t, "id,name,email,salary\n1,Alice,alice@x.com,50000\n2,\"Smith, Bob\",bob@x.com,60000.5\n", buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "id,name,email,salary\n", buf.String())
}

func TestWriteCSV_RoundTripsThroughParse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*ExportRow{{ID: 9, Name: "Dana", Email: "dana@x.com", Salary: "42"}}))

	rows, err := ParseCSV(&buf)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Dana", rows[0].Name)
	assert.Equal(t, "42", rows[0].Salary)
}
