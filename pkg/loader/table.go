package loader

import (
	"math"
	"strconv"
	"strings"

	apperr "github.com/citymesh/citygraph/pkg/errors"
)

// regionsFromTable reads the wide region layout: header cells are region
// labels, the cells below them are neighborhood names. Blank cells and
// columns with a blank header are skipped. Records come out column by column.
func regionsFromTable(rows [][]string) []RegionRecord {
	if len(rows) == 0 {
		return nil
	}
	header := rows[0]

	var records []RegionRecord
	for col, label := range header {
		region := strings.TrimSpace(label)
		if region == "" {
			continue
		}
		for i := 1; i < len(rows); i++ {
			if col >= len(rows[i]) {
				continue
			}
			name := strings.TrimSpace(rows[i][col])
			if name == "" {
				continue
			}
			records = append(records, RegionRecord{Name: name, Region: region, Row: i + 1})
		}
	}
	return records
}

// streetsFromTable reads the long street layout. The header must contain
// every required column; rows may be ragged, missing cells read as blank.
func streetsFromTable(rows [][]string, cols Columns, source string) ([]StreetRecord, error) {
	cols = cols.withDefaults()
	if len(rows) == 0 {
		return nil, missingField(cols.Origin, 0, source)
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	pos := make([]int, 0, 4)
	for _, name := range cols.required() {
		i, ok := index[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, missingField(name, 0, source)
		}
		pos = append(pos, i)
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	records := make([]StreetRecord, 0, len(rows)-1)
	for r := 1; r < len(rows); r++ {
		row := rows[r]
		if isBlankRow(row) {
			continue
		}
		line := r + 1
		dist, err := parseDistance(cell(row, pos[3]), line, source)
		if err != nil {
			return nil, err
		}
		records = append(records, StreetRecord{
			Origin:      cell(row, pos[0]),
			Destination: cell(row, pos[1]),
			Street:      cell(row, pos[2]),
			Distance:    dist,
			Row:         line,
		})
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDistance converts a distance cell to meters. A lone comma is read as
// the decimal separator ("850,5"), as exported by pt-BR spreadsheets.
func parseDistance(raw string, row int, source string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, apperr.New(apperr.ErrCodeInvalidDistance, "%srecord %d: distance is blank", prefix(source), row)
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperr.New(apperr.ErrCodeInvalidDistance, "%srecord %d: %q is not a number", prefix(source), row, raw)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperr.New(apperr.ErrCodeInvalidDistance, "%srecord %d: distance must be a non-negative number, got %q", prefix(source), row, raw)
	}
	return v, nil
}

func missingField(field string, row int, source string) error {
	se := &SchemaError{Field: field, Row: row, Source: source}
	return apperr.Wrap(apperr.ErrCodeMissingField, se, "invalid street feed")
}

func prefix(source string) string {
	if source == "" {
		return ""
	}
	return source + ": "
}
