package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ligabolo/torneos/internal/domain"
)

// Natural-key lookups for the import pipeline. Every query returns (nil, nil)
// when no row matches; LIMIT 1 makes the first match authoritative if
// reference data happens to contain duplicates.

func (db *DB) TournamentByName(ctx context.Context, name string) (*domain.Tournament, error) {
	var t domain.Tournament
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, location, start_date, end_date
		FROM tournaments
		WHERE name = $1
		LIMIT 1
	`, name).Scan(&t.ID, &t.Name, &t.Location, &t.StartDate, &t.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *DB) PersonByDocument(ctx context.Context, document string) (*domain.Person, error) {
	var p domain.Person
	err := db.Pool.QueryRow(ctx, `
		SELECT id, document, first_name, last_name
		FROM people
		WHERE document = $1
		LIMIT 1
	`, document).Scan(&p.ID, &p.Document, &p.FirstName, &p.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (db *DB) CategoryByNameActive(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, deleted_at
		FROM categories
		WHERE name = $1 AND deleted_at IS NULL
		LIMIT 1
	`, name).Scan(&c.ID, &c.Name, &c.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *DB) ModalityByNameActive(ctx context.Context, name string) (*domain.Modality, error) {
	var m domain.Modality
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, deleted_at
		FROM modalities
		WHERE name = $1 AND deleted_at IS NULL
		LIMIT 1
	`, name).Scan(&m.ID, &m.Name, &m.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (db *DB) BranchByName(ctx context.Context, name string) (*domain.Branch, error) {
	var b domain.Branch
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name
		FROM branches
		WHERE LOWER(name) = LOWER($1)
		LIMIT 1
	`, name).Scan(&b.ID, &b.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (db *DB) TeamByName(ctx context.Context, name string) (*domain.Team, error) {
	var t domain.Team
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, club_id
		FROM teams
		WHERE name = $1
		LIMIT 1
	`, name).Scan(&t.ID, &t.Name, &t.ClubID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
