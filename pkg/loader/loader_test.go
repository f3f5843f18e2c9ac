package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperr "github.com/citymesh/citygraph/pkg/errors"
)

const regionsCSV = `1.1,1.2,2.1
Boa Vista,Derby,Torre
Santo Amaro,,Madalena
,Graças,
`

const streetsCSV = `bairro_origem,bairro_destino,nome_logradouro,distancia_metros
Boa Vista,Santo Amaro,Rua da Aurora,850
Boa Vista,Santo Amaro,Rua do Hospício,620.5
Derby,Graças,Rua das Ninfas,400
Torre,Casa Forte,Av. 17 de Agosto,"1200,75"
`

func TestReadRegionsCSV(t *testing.T) {
	records, err := ReadRegionsCSV(strings.NewReader(regionsCSV))
	require.NoError(t, err)

	want := []RegionRecord{
		{Name: "Boa Vista", Region: "1.1", Row: 2},
		{Name: "Santo Amaro", Region: "1.1", Row: 3},
		{Name: "Derby", Region: "1.2", Row: 2},
		{Name: "Graças", Region: "1.2", Row: 4},
		{Name: "Torre", Region: "2.1", Row: 2},
		{Name: "Madalena", Region: "2.1", Row: 3},
	}
	assert.Equal(t, want, records)
}

func TestReadRegionsCSVSemicolon(t *testing.T) {
	records, err := ReadRegionsCSV(strings.NewReader("\ufeff1.1;1.2\nBoa Vista;Derby\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1.1", records[0].Region)
	assert.Equal(t, "Derby", records[1].Name)
}

func TestReadRegionsCSVEmpty(t *testing.T) {
	records, err := ReadRegionsCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadStreetsCSV(t *testing.T) {
	records, err := ReadStreetsCSV(strings.NewReader(streetsCSV), DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, StreetRecord{Origin: "Boa Vista", Destination: "Santo Amaro", Street: "Rua da Aurora", Distance: 850, Row: 2}, records[0])
	assert.InDelta(t, 620.5, records[1].Distance, 1e-9)
	assert.InDelta(t, 1200.75, records[3].Distance, 1e-9)
}

func TestReadStreetsCSVMissingColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
		field  string
	}{
		{"distance", "bairro_origem,bairro_destino,nome_logradouro", "distancia_metros"},
		{"origin", "bairro_destino,nome_logradouro,distancia_metros", "bairro_origem"},
		{"street", "bairro_origem,bairro_destino,distancia_metros", "nome_logradouro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadStreetsCSV(strings.NewReader(tt.header+"\nA,B,C\n"), DefaultColumns())
			require.Error(t, err)

			var se *SchemaError
			require.True(t, errors.As(err, &se), "want *SchemaError, got %T: %v", err, err)
			assert.Equal(t, tt.field, se.Field)
			assert.Zero(t, se.Row)
			assert.True(t, apperr.Is(err, apperr.ErrCodeMissingField))
		})
	}
}

func TestReadStreetsCSVCustomColumns(t *testing.T) {
	input := "from,to,name,meters\nA,B,Rua X,100\n"
	cols := Columns{Origin: "from", Destination: "to", Street: "name", Distance: "meters"}

	records, err := ReadStreetsCSV(strings.NewReader(input), cols)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Rua X", records[0].Street)
}

func TestReadStreetsCSVHeaderCaseAndOrder(t *testing.T) {
	input := "Distancia_Metros, Nome_Logradouro ,BAIRRO_DESTINO,bairro_origem,extra\n100,Rua X,B,A,ignored\n"

	records, err := ReadStreetsCSV(strings.NewReader(input), Columns{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, StreetRecord{Origin: "A", Destination: "B", Street: "Rua X", Distance: 100, Row: 2}, records[0])
}

func TestReadStreetsCSVDistanceSeparators(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"850", 850},
		{"850.5", 850.5},
		{"850,5", 850.5},
		{"1,234", 1.234},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			input := "bairro_origem,bairro_destino,nome_logradouro,distancia_metros\nA,B,Rua,\"" + tt.value + "\"\n"
			records, err := ReadStreetsCSV(strings.NewReader(input), DefaultColumns())
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.want, records[0].Distance)
		})
	}
}

func TestReadStreetsCSVBadDistance(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"text", "far"},
		{"negative", "-5"},
		{"blank", ""},
		{"nan", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "bairro_origem,bairro_destino,nome_logradouro,distancia_metros\nA,B,Rua,\"" + tt.value + "\"\n"
			_, err := ReadStreetsCSV(strings.NewReader(input), DefaultColumns())
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidDistance), "got %v", err)
			assert.Contains(t, err.Error(), "record 2")
		})
	}
}

func TestReadStreetsCSVSkipsBlankRows(t *testing.T) {
	input := "bairro_origem,bairro_destino,nome_logradouro,distancia_metros\n,,,\nA,B,Rua,1\n"
	records, err := ReadStreetsCSV(strings.NewReader(input), DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Row)
}

func TestReadDocumentYAML(t *testing.T) {
	input := `
regions:
  "1.1": [Boa Vista, Santo Amaro]
  "2.1": Torre
streets:
  - bairro_origem: Boa Vista
    bairro_destino: Santo Amaro
    nome_logradouro: Rua da Aurora
    distancia_metros: 850
  - bairro_origem: Torre
    bairro_destino: Madalena
    nome_logradouro: Rua Real da Torre
    distancia_metros: "700,5"
`
	doc, err := ReadDocument(strings.NewReader(input), Columns{})
	require.NoError(t, err)

	require.Len(t, doc.Regions, 3)
	assert.Equal(t, "Boa Vista", doc.Regions[0].Name)
	assert.Equal(t, "1.1", doc.Regions[0].Region)
	assert.Equal(t, RegionRecord{Name: "Torre", Region: "2.1", Row: 4}, doc.Regions[2])

	require.Len(t, doc.Streets, 2)
	assert.Equal(t, "Rua da Aurora", doc.Streets[0].Street)
	assert.InDelta(t, 700.5, doc.Streets[1].Distance, 1e-9)
}

func TestReadDocumentJSON(t *testing.T) {
	input := `{"regions": {"1.1": ["Boa Vista"]},` +
		`"streets": [{"bairro_origem": "Boa Vista", "bairro_destino": "Derby", "nome_logradouro": "Rua", "distancia_metros": 12.5}]}`
	doc, err := ReadDocument(strings.NewReader(input), Columns{})
	require.NoError(t, err)
	assert.Len(t, doc.Regions, 1)
	require.Len(t, doc.Streets, 1)
	assert.InDelta(t, 12.5, doc.Streets[0].Distance, 1e-9)
}

func TestReadDocumentMissingField(t *testing.T) {
	input := `
streets:
  - bairro_origem: A
    bairro_destino: B
    distancia_metros: 10
`
	_, err := ReadDocument(strings.NewReader(input), Columns{})
	require.Error(t, err)

	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "nome_logradouro", se.Field)
	assert.Equal(t, 1, se.Row)
}

func TestReadDocumentEmpty(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(""), Columns{})
	require.NoError(t, err)
	assert.Empty(t, doc.Regions)
	assert.Empty(t, doc.Streets)
}

func TestReadDocumentBadRegions(t *testing.T) {
	_, err := ReadDocument(strings.NewReader("regions: [a, b]\n"), Columns{})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat))
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"bairro_origem", "bairro_destino", "nome_logradouro", "distancia_metros"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Boa Vista", "Derby", "Rua do Riachuelo", 350}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := ReadStreetsXLSX(buf, DefaultColumns())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, StreetRecord{Origin: "Boa Vista", Destination: "Derby", Street: "Rua do Riachuelo", Distance: 350, Row: 2}, records[0])
}

func TestReadXLSXFormattedDistance(t *testing.T) {
	for _, numFmt := range []int{1, 2, 4} {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"bairro_origem", "bairro_destino", "nome_logradouro", "distancia_metros"}))
		require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Boa Vista", "Derby", "Rua do Riachuelo", 1234.5}))
		style, err := f.NewStyle(&excelize.Style{NumFmt: numFmt})
		require.NoError(t, err)
		require.NoError(t, f.SetCellStyle("Sheet1", "D2", "D2", style))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)
		require.NoError(t, f.Close())

		records, err := ReadStreetsXLSX(buf, DefaultColumns())
		require.NoError(t, err, "numFmt %d", numFmt)
		require.Len(t, records, 1)
		assert.Equal(t, 1234.5, records[0].Distance, "numFmt %d", numFmt)
	}
}

func TestReadRegionsXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"1.1", "1.2"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Boa Vista", "Derby"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := ReadRegionsXLSX(buf)
	require.NoError(t, err)
	assert.Equal(t, []RegionRecord{
		{Name: "Boa Vista", Region: "1.1", Row: 2},
		{Name: "Derby", Region: "1.2", Row: 2},
	}, records)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	regions := filepath.Join(dir, "regions.csv")
	streets := filepath.Join(dir, "streets.csv")
	require.NoError(t, os.WriteFile(regions, []byte(regionsCSV), 0o644))
	require.NoError(t, os.WriteFile(streets, []byte(streetsCSV), 0o644))

	r, err := ReadRegionsFile(regions)
	require.NoError(t, err)
	assert.Len(t, r, 6)

	s, err := ReadStreetsFile(streets, DefaultColumns())
	require.NoError(t, err)
	assert.Len(t, s, 4)
}

func TestReadFilesErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadStreetsFile(filepath.Join(dir, "missing.csv"), DefaultColumns())
	assert.True(t, apperr.Is(err, apperr.ErrCodeFileNotFound), "got %v", err)

	_, err = ReadRegionsFile(filepath.Join(dir, "regions.txt"))
	assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat), "got %v", err)

	bad := filepath.Join(dir, "streets.csv")
	require.NoError(t, os.WriteFile(bad, []byte("bairro_origem,bairro_destino\nA,B\n"), 0o644))
	_, err = ReadStreetsFile(bad, DefaultColumns())
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, bad, se.Source)
	assert.Equal(t, "nome_logradouro", se.Field)
	assert.Contains(t, err.Error(), bad)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	regions := filepath.Join(dir, "regions.yaml")
	streets := filepath.Join(dir, "streets.csv")
	require.NoError(t, os.WriteFile(regions, []byte("regions:\n  \"1.1\": [Boa Vista, Santo Amaro]\n"), 0o644))
	require.NoError(t, os.WriteFile(streets, []byte(streetsCSV), 0o644))

	g, report, err := LoadFiles(context.Background(), regions, streets, DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 2, report.Regions)
	assert.Equal(t, 4, report.Streets)

	v, ok := g.Vertex("Santo Amaro")
	require.True(t, ok)
	assert.Equal(t, "1.1", v.Region)
}

func TestLoadExampleFeeds(t *testing.T) {
	g, report, err := LoadFiles(context.Background(),
		filepath.Join("..", "..", "examples", "recife", "bairros.csv"),
		filepath.Join("..", "..", "examples", "recife", "logradouros.csv"),
		DefaultColumns())
	require.NoError(t, err)

	assert.Equal(t, 15, g.VertexCount())
	assert.Equal(t, 16, g.EdgeCount())
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 5, g.Stats().Regions)

	edges := g.EdgesBetween("Derby", "Boa Vista")
	require.Len(t, edges, 2)
	assert.InDelta(t, 1120.75, edges[1].Weight, 1e-9)
}
