package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	apperr "github.com/citymesh/citygraph/pkg/errors"
)

// ReadRegionsCSV reads a wide-layout region feed from r.
func ReadRegionsCSV(r io.Reader) ([]RegionRecord, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return regionsFromTable(rows), nil
}

// ReadStreetsCSV reads a street feed from r. The header must contain every
// column named in cols; blank column names fall back to DefaultColumns.
//
// Distances use a dot or a comma as the decimal separator. A value holding a
// single comma and no dot is always read as decimal, so "1,234" loads as
// 1.234 meters; write thousands without grouping.
func ReadStreetsCSV(r io.Reader, cols Columns) ([]StreetRecord, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return streetsFromTable(rows, cols, "")
}

// readCSV reads every row, sniffing ';' as the separator when the header
// contains no ',' (the usual export of pt-BR spreadsheet software).
func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	header, _, _ := strings.Cut(text, "\n")
	if !strings.Contains(header, ",") && strings.Contains(header, ";") {
		cr.Comma = ';'
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "malformed csv")
	}
	return rows, nil
}
