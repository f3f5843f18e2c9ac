// Package loader turns neighborhood and street feeds into a multigraph.
//
// Two feeds describe a city:
//
//   - The region feed lists neighborhoods per region. In tabular form it uses
//     the wide layout of the municipal spreadsheets: the header row holds the
//     region labels and each column lists the neighborhoods of that region.
//   - The street feed has one row per street segment with four required
//     columns: origin, destination, street name and distance in meters
//     (by default bairro_origem, bairro_destino, nome_logradouro and
//     distancia_metros).
//
// Feeds can be CSV, XLSX (first sheet), or a JSON/YAML document:
//
//	regions:
//	  "1.1": [Boa Vista, Santo Amaro]
//	streets:
//	  - bairro_origem: Boa Vista
//	    bairro_destino: Santo Amaro
//	    nome_logradouro: Rua da Aurora
//	    distancia_metros: 850
//
// Readers only produce typed records. A missing required column or field is
// reported as a [*SchemaError] naming it, wrapped in the MISSING_FIELD code;
// distances that are not non-negative numbers are INVALID_DISTANCE errors.
//
// [Build] applies the records to a fresh graph, regions first and streets
// second, skipping blank neighborhood names. Progress is reported through
// [observability.BuildHooks]; this package never logs.
package loader
