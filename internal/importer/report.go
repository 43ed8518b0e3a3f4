package importer

import (
	"fmt"
	"time"
)

// Report is the single user-visible outcome of an import call. It is always
// produced, success or failure; the caller distinguishes outcomes by the
// counts and messages, not by an exception.
type Report struct {
	ImportID string        `json:"importId"`
	Created  int           `json:"created"`
	Skipped  int           `json:"skipped"`
	Errors   []string      `json:"errors"`
	DryRun   bool          `json:"dryRun"`
	Duration time.Duration `json:"durationNs"`
}

func newReport(importID string, dryRun bool) *Report {
	return &Report{
		ImportID: importID,
		Errors:   []string{},
		DryRun:   dryRun,
	}
}

// addError records a row-level rejection attributed to a source line.
func (r *Report) addError(lineNumber int, msg string) {
	r.Errors = append(r.Errors, fmt.Sprintf("línea %d: %s", lineNumber, msg))
}

// addSkip records a duplicate row: reported, counted, but not an error.
// Skips and errors share one ordered message list so the caller sees
// problems in row-encounter order.
func (r *Report) addSkip(lineNumber int, msg string) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf("línea %d: %s", lineNumber, msg))
}

// addBatchError records a problem that is not attributable to a single line.
func (r *Report) addBatchError(msg string) {
	r.Errors = append(r.Errors, msg)
}
