// Package storage defines the persistence ports consumed by the import
// pipeline. Implementations live in subpackages (postgres).
package storage

import (
	"context"
	"errors"

	"github.com/ligabolo/torneos/internal/domain"
)

// ErrDuplicateResult is returned by ResultStore.SaveAll when the batch hits
// the unique index on (person, tournament, round, line). Concurrent imports
// can both pass the read-side duplicate check; the index is the authority
// and a violation at commit time is a duplicate outcome, not a crash.
var ErrDuplicateResult = errors.New("resultado duplicado")

// ReferenceStore resolves natural keys to persisted reference entities.
//
// Every lookup returns (nil, nil) when no record matches; a non-nil error is
// reserved for unexpected storage failures. When reference data contains more
// than one match for a name, the first match is authoritative.
type ReferenceStore interface {
	// TournamentByName matches the tournament name exactly.
	TournamentByName(ctx context.Context, name string) (*domain.Tournament, error)

	// PersonByDocument matches the player's document number exactly.
	PersonByDocument(ctx context.Context, document string) (*domain.Person, error)

	// CategoryByNameActive matches by name, excluding soft-deleted categories.
	CategoryByNameActive(ctx context.Context, name string) (*domain.Category, error)

	// ModalityByNameActive matches by name, excluding soft-deleted modalities.
	ModalityByNameActive(ctx context.Context, name string) (*domain.Modality, error)

	// BranchByName matches the branch name case-insensitively.
	BranchByName(ctx context.Context, name string) (*domain.Branch, error)

	// TeamByName matches the team name exactly.
	TeamByName(ctx context.Context, name string) (*domain.Team, error)
}

// ResultStore persists result records.
type ResultStore interface {
	// Exists reports whether a result is already persisted for the
	// duplicate-detection key (person, tournament, round, line).
	Exists(ctx context.Context, personID, tournamentID int64, roundNumber, lineNumber int) (bool, error)

	// SaveAll persists the batch inside one transaction: either every record
	// is written or none is. A unique-index violation is reported as
	// ErrDuplicateResult.
	SaveAll(ctx context.Context, records []domain.ResultRecord) (int, error)
}
