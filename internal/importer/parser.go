package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ExpectedColumns is the fixed column count of the import file:
// documento, torneo, categoria, modalidad, rama, equipo, ronda, carril,
// linea, puntaje.
const ExpectedColumns = 10

// Row is one parsed data line of the import file. All fields are kept as raw
// text; numeric coercion is deferred to validation so error messages can name
// the offending value and line.
type Row struct {
	Document   string
	Tournament string
	Category   string
	Modality   string
	Branch     string
	Team       string
	Round      string
	Lane       string
	Line       string
	Score      string

	// LineNumber is the 1-based position in the source file, for error
	// attribution.
	LineNumber int
}

// parseRows turns the raw file into ordered rows, skipping the header.
//
// Structural problems abort the whole call with a single error: a file with
// no data rows after the header, or any row with fewer than ExpectedColumns
// columns. Empty lines are ignored.
func parseRows(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(sanitizeUTF8(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo: %v", err)
	}

	var rows []Row
	sawHeader := false
	for i, record := range records {
		lineNum := i + 1
		if isEmptyRow(record) {
			continue
		}
		if !sawHeader {
			sawHeader = true
			continue
		}
		if len(record) < ExpectedColumns {
			return nil, fmt.Errorf("línea %d: se esperaban %d columnas, se encontraron %d",
				lineNum, ExpectedColumns, len(record))
		}
		rows = append(rows, Row{
			Document:   cleanCell(record[0]),
			Tournament: cleanCell(record[1]),
			Category:   cleanCell(record[2]),
			Modality:   cleanCell(record[3]),
			Branch:     cleanCell(record[4]),
			Team:       cleanCell(record[5]),
			Round:      cleanCell(record[6]),
			Lane:       cleanCell(record[7]),
			Line:       cleanCell(record[8]),
			Score:      cleanCell(record[9]),
			LineNumber: lineNum,
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("el archivo no contiene filas de datos")
	}
	return rows, nil
}

// cleanCell trims whitespace and a UTF-8 BOM, which Excel likes to prepend.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "\ufeff"))
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sanitizeUTF8 replaces invalid byte sequences with the replacement rune so
// csv parsing and error messages stay well-formed.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('\uFFFD')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}
	return buf.Bytes()
}
