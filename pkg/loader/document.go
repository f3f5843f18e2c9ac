package loader

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	apperr "github.com/citymesh/citygraph/pkg/errors"
)

// Document is a structured feed holding regions, streets or both.
type Document struct {
	Regions []RegionRecord
	Streets []StreetRecord
}

type rawDocument struct {
	Regions yaml.Node              `yaml:"regions"`
	Streets []map[string]yaml.Node `yaml:"streets"`
}

// ReadDocument decodes a JSON or YAML feed from r.
//
// Regions is a mapping from region label to a list of neighborhood names (a
// single name is accepted too); declaration order is preserved. Streets is a
// list of mappings keyed by the names in cols. A street entry lacking one of
// them yields a [*SchemaError] naming the field.
func ReadDocument(r io.Reader, cols Columns) (*Document, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return &Document{}, nil
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode feed document")
	}

	regions, err := regionsFromNode(&raw.Regions)
	if err != nil {
		return nil, err
	}
	streets, err := streetsFromMaps(raw.Streets, cols.withDefaults())
	if err != nil {
		return nil, err
	}
	return &Document{Regions: regions, Streets: streets}, nil
}

func regionsFromNode(n *yaml.Node) ([]RegionRecord, error) {
	if n.Kind == 0 || n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "line %d: regions must be a mapping of region to neighborhoods", n.Line)
	}

	var records []RegionRecord
	for i := 0; i+1 < len(n.Content); i += 2 {
		region := strings.TrimSpace(n.Content[i].Value)
		value := n.Content[i+1]

		var names []*yaml.Node
		switch value.Kind {
		case yaml.SequenceNode:
			names = value.Content
		case yaml.ScalarNode:
			names = []*yaml.Node{value}
		default:
			return nil, apperr.New(apperr.ErrCodeInvalidFormat, "line %d: region %q must list neighborhood names", value.Line, region)
		}

		for _, nn := range names {
			if nn.Kind != yaml.ScalarNode || nn.Tag == "!!null" {
				continue
			}
			name := strings.TrimSpace(nn.Value)
			if name == "" || region == "" {
				continue
			}
			records = append(records, RegionRecord{Name: name, Region: region, Row: nn.Line})
		}
	}
	return records, nil
}

func streetsFromMaps(entries []map[string]yaml.Node, cols Columns) ([]StreetRecord, error) {
	records := make([]StreetRecord, 0, len(entries))
	for i, entry := range entries {
		row := i + 1
		values := make([]string, 0, 4)
		for _, field := range cols.required() {
			n, ok := entry[field]
			if !ok {
				return nil, missingField(field, row, "")
			}
			if n.Kind != yaml.ScalarNode {
				return nil, apperr.New(apperr.ErrCodeInvalidFormat, "record %d: field %q must be a scalar", row, field)
			}
			if n.Tag == "!!null" {
				values = append(values, "")
				continue
			}
			values = append(values, n.Value)
		}

		dist, err := parseDistance(values[3], row, "")
		if err != nil {
			return nil, err
		}
		records = append(records, StreetRecord{
			Origin:      strings.TrimSpace(values[0]),
			Destination: strings.TrimSpace(values[1]),
			Street:      strings.TrimSpace(values[2]),
			Distance:    dist,
			Row:         row,
		})
	}
	return records, nil
}
