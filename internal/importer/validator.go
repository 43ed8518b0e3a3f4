package importer

import (
	"fmt"
	"strconv"
)

// Valid bowling line score range, inclusive.
const (
	MinScore = 0
	MaxScore = 300
)

// rowNumbers holds the numeric fields of a row after coercion.
type rowNumbers struct {
	round int
	lane  int
	line  int
	score int
}

// validateNumbers coerces the numeric fields of a row and checks the score
// range. It returns a user-facing message on the first problem found; the
// message names the offending value so it can be attributed to the line.
func validateNumbers(row Row) (rowNumbers, string) {
	var n rowNumbers
	var ok bool

	if n.round, ok = parseNumber(row.Round); !ok {
		return n, fmt.Sprintf("%s no es un número válido", row.Round)
	}
	if n.lane, ok = parseNumber(row.Lane); !ok {
		return n, fmt.Sprintf("%s no es un número válido", row.Lane)
	}
	if n.line, ok = parseNumber(row.Line); !ok {
		return n, fmt.Sprintf("%s no es un número válido", row.Line)
	}
	if n.score, ok = parseNumber(row.Score); !ok {
		return n, fmt.Sprintf("%s no es un número válido", row.Score)
	}

	if n.score < MinScore || n.score > MaxScore {
		return n, fmt.Sprintf("puntaje fuera de rango (%d-%d)", MinScore, MaxScore)
	}
	return n, ""
}

func parseNumber(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// scoreKey is the duplicate-detection key: one score line per person, per
// tournament round. Used both against persisted data and within a single
// file, so a file repeating a line cannot double-create at commit time.
type scoreKey struct {
	personID     int64
	tournamentID int64
	round        int
	line         int
}
