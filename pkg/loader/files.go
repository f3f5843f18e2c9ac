package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperr "github.com/citymesh/citygraph/pkg/errors"
)

// ReadRegionsFile reads a region feed, choosing the reader by extension:
// .csv, .xlsx, or .json/.yaml/.yml documents (their "regions" section).
func ReadRegionsFile(path string) ([]RegionRecord, error) {
	f, ext, err := openFeed(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []RegionRecord
	switch ext {
	case ".csv":
		records, err = ReadRegionsCSV(f)
	case ".xlsx":
		records, err = ReadRegionsXLSX(f)
	default:
		var doc *Document
		doc, err = ReadDocument(f, Columns{})
		if doc != nil {
			records = doc.Regions
		}
	}
	if err != nil {
		return nil, withSource(err, path)
	}
	return records, nil
}

// ReadStreetsFile reads a street feed, choosing the reader by extension:
// .csv, .xlsx, or .json/.yaml/.yml documents (their "streets" section).
func ReadStreetsFile(path string, cols Columns) ([]StreetRecord, error) {
	f, ext, err := openFeed(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []StreetRecord
	switch ext {
	case ".csv":
		records, err = ReadStreetsCSV(f, cols)
	case ".xlsx":
		records, err = ReadStreetsXLSX(f, cols)
	default:
		var doc *Document
		doc, err = ReadDocument(f, cols)
		if doc != nil {
			records = doc.Streets
		}
	}
	if err != nil {
		return nil, withSource(err, path)
	}
	return records, nil
}

func openFeed(path string) (*os.File, string, error) {
	if err := apperr.ValidateFeedPath(path); err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", apperr.Wrap(apperr.ErrCodeFileNotFound, err, "feed %s", path)
	}
	if err != nil {
		return nil, "", apperr.Wrap(apperr.ErrCodeInvalidInput, err, "open %s", path)
	}
	return f, strings.ToLower(filepath.Ext(path)), nil
}

// withSource records the feed path on schema errors and prefixes others.
func withSource(err error, path string) error {
	var se *SchemaError
	if errors.As(err, &se) && se.Source == "" {
		se.Source = path
		return err
	}
	if code := apperr.GetCode(err); code != "" {
		return apperr.Wrap(code, err, "%s", path)
	}
	return apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "%s", path)
}
