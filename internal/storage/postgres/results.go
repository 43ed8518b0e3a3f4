package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ligabolo/torneos/internal/domain"
	"github.com/ligabolo/torneos/internal/storage"
)

// uniqueViolation is the PostgreSQL error code for unique-index violations.
const uniqueViolation = "23505"

func (db *DB) Exists(ctx context.Context, personID, tournamentID int64, roundNumber, lineNumber int) (bool, error) {
	var exists bool
	err := db.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM results
			WHERE person_id = $1 AND tournament_id = $2
			  AND round_number = $3 AND line_number = $4
		)
	`, personID, tournamentID, roundNumber, lineNumber).Scan(&exists)
	return exists, err
}

// SaveAll writes the batch in one transaction. A unique-index violation on
// the duplicate-detection key rolls back the whole batch and is reported as
// storage.ErrDuplicateResult so the pipeline can treat it as a duplicate
// outcome rather than a hard failure.
func (db *DB) SaveAll(ctx context.Context, records []domain.ResultRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(`
			INSERT INTO results
				(person_id, tournament_id, category_id, modality_id, branch_id,
				 team_id, round_number, lane_number, line_number, score,
				 created_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`, r.PersonID, r.TournamentID, r.CategoryID, r.ModalityID, r.BranchID,
			r.TeamID, r.RoundNumber, r.LaneNumber, r.LineNumber, r.Score,
			r.CreatedBy, r.CreatedAt, r.UpdatedAt)
	}

	br := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := br.Exec(); err != nil {
			br.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return 0, storage.ErrDuplicateResult
			}
			return 0, fmt.Errorf("insert result: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(records), nil
}
