package importer

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseRows(t *testing.T) {
	data := []byte(strings.Join([]string{
		"documento,torneo,categoria,modalidad,rama,equipo,ronda,carril,linea,puntaje",
		"100,Nacional 2025,Primera,Individual,Masculina,Los Pinos,1,3,1,210",
		"",
		"200,Nacional 2025,Primera,Individual,Femenina,,2,4,1,185",
	}, "\n"))

	rows, err := parseRows(data)
	if err != nil {
		t.Fatalf("parseRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Document != "100" || first.Tournament != "Nacional 2025" || first.Score != "210" {
		t.Errorf("first row = %+v", first)
	}
	if first.LineNumber != 2 {
		t.Errorf("first row LineNumber = %d, want 2", first.LineNumber)
	}

	// The blank line is skipped but does not shift source line numbers.
	second := rows[1]
	if second.LineNumber != 4 {
		t.Errorf("second row LineNumber = %d, want 4", second.LineNumber)
	}
	if second.Team != "" {
		t.Errorf("second row Team = %q, want empty", second.Team)
	}
}

func TestParseRowsHeaderOnly(t *testing.T) {
	_, err := parseRows([]byte("documento,torneo,categoria,modalidad,rama,equipo,ronda,carril,linea,puntaje\n"))
	if err == nil || !strings.Contains(err.Error(), "no contiene filas de datos") {
		t.Errorf("parseRows() error = %v, want no-data message", err)
	}
}

func TestParseRowsEmptyFile(t *testing.T) {
	_, err := parseRows([]byte(""))
	if err == nil {
		t.Error("parseRows() on empty input should fail")
	}
}

func TestParseRowsShortRow(t *testing.T) {
	data := []byte(strings.Join([]string{
		"documento,torneo,categoria,modalidad,rama,equipo,ronda,carril,linea,puntaje",
		"100,Nacional 2025,Primera",
	}, "\n"))

	_, err := parseRows(data)
	if err == nil {
		t.Fatal("parseRows() should fail on a short row")
	}
	if !strings.Contains(err.Error(), "se esperaban 10 columnas") {
		t.Errorf("error = %v, want column-count message", err)
	}
	if !strings.Contains(err.Error(), "línea 2") {
		t.Errorf("error = %v, want line attribution", err)
	}
}

func TestParseRowsTrimsCells(t *testing.T) {
	data := []byte(strings.Join([]string{
		"documento,torneo,categoria,modalidad,rama,equipo,ronda,carril,linea,puntaje",
		" 100 ,Nacional 2025, Primera ,Individual,Masculina,, 1 ,3,1, 210 ",
	}, "\n"))

	rows, err := parseRows(data)
	if err != nil {
		t.Fatalf("parseRows() error = %v", err)
	}
	r := rows[0]
	if r.Document != "100" || r.Category != "Primera" || r.Round != "1" || r.Score != "210" {
		t.Errorf("cells not trimmed: %+v", r)
	}
}

func TestCleanCellStripsBOM(t *testing.T) {
	if got := cleanCell("\ufeff100"); got != "100" {
		t.Errorf("cleanCell = %q, want %q", got, "100")
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"valid passthrough", []byte("hola mundo"), []byte("hola mundo")},
		{"invalid byte replaced", []byte{0x80}, []byte("�")},
		{"mixed", []byte("caf\xe9"), []byte("caf�")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeUTF8(tt.input); !bytes.Equal(got, tt.want) {
				t.Errorf("sanitizeUTF8(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsEmptyRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"empty slice", []string{}, true},
		{"blank cells", []string{"", "  ", "\t"}, true},
		{"one value", []string{"", "x", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmptyRow(tt.row); got != tt.want {
				t.Errorf("isEmptyRow(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}
