package loader

import (
	"io"

	"github.com/xuri/excelize/v2"

	apperr "github.com/citymesh/citygraph/pkg/errors"
)

// ReadRegionsXLSX reads a wide-layout region feed from the first sheet of an
// XLSX workbook.
func ReadRegionsXLSX(r io.Reader) ([]RegionRecord, error) {
	rows, err := readXLSX(r)
	if err != nil {
		return nil, err
	}
	return regionsFromTable(rows), nil
}

// ReadStreetsXLSX reads a street feed from the first sheet of an XLSX
// workbook.
func ReadStreetsXLSX(r io.Reader, cols Columns) ([]StreetRecord, error) {
	rows, err := readXLSX(r)
	if err != nil {
		return nil, err
	}
	return streetsFromTable(rows, cols, "")
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "workbook has no sheets")
	}
	// Raw values keep number formats from rounding or regrouping distances.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "read sheet %s", sheets[0])
	}
	return rows, nil
}
