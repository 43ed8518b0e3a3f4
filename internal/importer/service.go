// Package importer implements the bulk result import pipeline: parse a
// tabular file, resolve natural keys against reference data, validate each
// row, and commit the surviving rows as one atomic batch. Row-level problems
// are collected into a line-addressed report instead of aborting the call.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ligabolo/torneos/internal/domain"
	"github.com/ligabolo/torneos/internal/logging"
	"github.com/ligabolo/torneos/internal/storage"
)

// Service runs import calls against the storage ports.
type Service struct {
	refs    storage.ReferenceStore
	results storage.ResultStore
}

// New creates an import service.
func New(refs storage.ReferenceStore, results storage.ResultStore) *Service {
	return &Service{refs: refs, results: results}
}

// candidate is a fully resolved and validated row awaiting commit.
type candidate struct {
	res  *resolvedRow
	nums rowNumbers
}

// ImportResults runs one import call over the file and returns the report.
//
// Processing is strictly sequential: the single-tournament invariant and
// duplicate detection both depend on state accumulated from prior rows of
// the same call. Valid rows are collected first and committed at the end in
// one transaction, so a mid-file batch violation rejects everything.
//
// With validateOnly the commit is skipped and Created reports how many rows
// would have been created. The returned error is non-nil only for storage
// failures; every row-level problem lands in the report.
func (s *Service) ImportResults(ctx context.Context, file io.Reader, uploaderID int64, validateOnly bool) (*Report, error) {
	start := time.Now()
	rep := newReport(uuid.NewString(), validateOnly)
	logger := logging.WithFields(ctx, "import_id", rep.ImportID, "dry_run", validateOnly)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}

	rows, err := parseRows(data)
	if err != nil {
		rep.addBatchError(err.Error())
		rep.Duration = time.Since(start)
		logger.Warn("importación abortada", "error", err)
		observeReport(rep)
		return rep, nil
	}

	var expected *domain.Tournament
	seen := make(map[scoreKey]bool, len(rows))
	var candidates []candidate

	for _, row := range rows {
		res, msg, err := s.resolve(ctx, row)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			rep.addError(row.LineNumber, msg)
			continue
		}

		// The first resolved row establishes the expected tournament. Any
		// later row naming a different one rejects the whole batch: a file
		// split across tournaments would corrupt round/line aggregation.
		if expected == nil {
			expected = res.tournament
		} else if res.tournament.ID != expected.ID {
			rep.addError(row.LineNumber, fmt.Sprintf(
				"el torneo %q no coincide con %q; todas las filas deben pertenecer al mismo torneo",
				res.tournament.Name, expected.Name))
			rep.Created = 0
			rep.Skipped = 0
			rep.Duration = time.Since(start)
			logger.Warn("importación rechazada: múltiples torneos",
				"expected", expected.Name, "got", res.tournament.Name, "line", row.LineNumber)
			observeReport(rep)
			return rep, nil
		}

		nums, msg := validateNumbers(row)
		if msg != "" {
			rep.addError(row.LineNumber, msg)
			continue
		}

		key := scoreKey{res.person.ID, res.tournament.ID, nums.round, nums.line}
		if seen[key] {
			rep.addSkip(row.LineNumber, duplicateMessage(row.Document, nums))
			continue
		}
		dup, err := s.results.Exists(ctx, res.person.ID, res.tournament.ID, nums.round, nums.line)
		if err != nil {
			return nil, fmt.Errorf("verificar duplicado: %w", err)
		}
		if dup {
			rep.addSkip(row.LineNumber, duplicateMessage(row.Document, nums))
			continue
		}

		seen[key] = true
		candidates = append(candidates, candidate{res: res, nums: nums})
	}

	if validateOnly {
		rep.Created = len(candidates)
		rep.Duration = time.Since(start)
		logger.Info("validación completada",
			"would_create", rep.Created, "skipped", rep.Skipped, "errors", len(rep.Errors)-rep.Skipped)
		observeReport(rep)
		return rep, nil
	}

	if len(candidates) > 0 {
		n, err := s.results.SaveAll(ctx, buildRecords(candidates, uploaderID))
		switch {
		case errors.Is(err, storage.ErrDuplicateResult):
			// A concurrent import won the race; the unique index rolled the
			// batch back. Report it as duplicates, not as a failure.
			rep.Skipped += len(candidates)
			rep.addBatchError("resultado duplicado detectado al guardar el lote; no se creó ningún registro")
		case err != nil:
			return nil, fmt.Errorf("guardar resultados: %w", err)
		default:
			rep.Created = n
		}
	}

	rep.Duration = time.Since(start)
	logger.Info("importación completada",
		"created", rep.Created, "skipped", rep.Skipped, "errors", len(rep.Errors)-rep.Skipped)
	observeReport(rep)
	return rep, nil
}

func duplicateMessage(document string, nums rowNumbers) string {
	return fmt.Sprintf("resultado duplicado para el documento %s (ronda %d, línea %d)",
		document, nums.round, nums.line)
}

func buildRecords(candidates []candidate, uploaderID int64) []domain.ResultRecord {
	now := time.Now().UTC()
	records := make([]domain.ResultRecord, 0, len(candidates))
	for _, c := range candidates {
		var teamID *int64
		if c.res.team != nil {
			id := c.res.team.ID
			teamID = &id
		}
		records = append(records, domain.ResultRecord{
			PersonID:     c.res.person.ID,
			TournamentID: c.res.tournament.ID,
			CategoryID:   c.res.category.ID,
			ModalityID:   c.res.modality.ID,
			BranchID:     c.res.branch.ID,
			TeamID:       teamID,
			RoundNumber:  c.nums.round,
			LaneNumber:   c.nums.lane,
			LineNumber:   c.nums.line,
			Score:        c.nums.score,
			CreatedBy:    uploaderID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return records
}
