package loader

import (
	"fmt"
	"strings"
)

// RegionRecord assigns a neighborhood to a region. Row is the 1-based line
// in the source (0 when unknown).
type RegionRecord struct {
	Name   string
	Region string
	Row    int
}

// StreetRecord is one street segment between two neighborhoods.
type StreetRecord struct {
	Origin      string
	Destination string
	Street      string
	Distance    float64
	Row         int
}

// Columns names the required street feed columns. In JSON/YAML documents the
// same names are used as the keys of each street entry.
type Columns struct {
	Origin      string `toml:"origin"`
	Destination string `toml:"destination"`
	Street      string `toml:"street"`
	Distance    string `toml:"distance"`
}

// DefaultColumns returns the column names of the municipal street spreadsheet.
func DefaultColumns() Columns {
	return Columns{
		Origin:      "bairro_origem",
		Destination: "bairro_destino",
		Street:      "nome_logradouro",
		Distance:    "distancia_metros",
	}
}

// withDefaults fills blank names from DefaultColumns.
func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if strings.TrimSpace(c.Origin) == "" {
		c.Origin = d.Origin
	}
	if strings.TrimSpace(c.Destination) == "" {
		c.Destination = d.Destination
	}
	if strings.TrimSpace(c.Street) == "" {
		c.Street = d.Street
	}
	if strings.TrimSpace(c.Distance) == "" {
		c.Distance = d.Distance
	}
	return c
}

// required lists the columns in the order they are checked.
func (c Columns) required() []string {
	return []string{c.Origin, c.Destination, c.Street, c.Distance}
}

// SchemaError reports a required field that is absent from a feed.
// Row is 0 when the whole column is missing from the header.
type SchemaError struct {
	Field  string
	Row    int
	Source string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		b.WriteString(e.Source)
		b.WriteString(": ")
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, "record %d: ", e.Row)
	}
	fmt.Fprintf(&b, "required field %q not found", e.Field)
	return b.String()
}
