package importer

import (
	"context"
	"fmt"

	"github.com/ligabolo/torneos/internal/domain"
)

// resolvedRow is a Row whose natural-key fields resolved to persisted
// entities. It exists only when every required reference resolved.
type resolvedRow struct {
	row        Row
	person     *domain.Person
	tournament *domain.Tournament
	category   *domain.Category
	modality   *domain.Modality
	branch     *domain.Branch
	team       *domain.Team // nil when the team column is blank
}

// resolve looks up every reference of a row. A missing reference produces a
// row-level message naming the reference and value; the row is then excluded
// from further processing. A non-nil error means the store itself failed.
func (s *Service) resolve(ctx context.Context, row Row) (*resolvedRow, string, error) {
	tournament, err := s.refs.TournamentByName(ctx, row.Tournament)
	if err != nil {
		return nil, "", fmt.Errorf("buscar torneo: %w", err)
	}
	if tournament == nil {
		return nil, fmt.Sprintf("No existe torneo %s", row.Tournament), nil
	}

	person, err := s.refs.PersonByDocument(ctx, row.Document)
	if err != nil {
		return nil, "", fmt.Errorf("buscar jugador: %w", err)
	}
	if person == nil {
		return nil, fmt.Sprintf("no existe jugador con documento %s", row.Document), nil
	}

	category, err := s.refs.CategoryByNameActive(ctx, row.Category)
	if err != nil {
		return nil, "", fmt.Errorf("buscar categoría: %w", err)
	}
	if category == nil {
		return nil, fmt.Sprintf("no existe categoría %s", row.Category), nil
	}

	modality, err := s.refs.ModalityByNameActive(ctx, row.Modality)
	if err != nil {
		return nil, "", fmt.Errorf("buscar modalidad: %w", err)
	}
	if modality == nil {
		return nil, fmt.Sprintf("no existe modalidad %s", row.Modality), nil
	}

	branch, err := s.refs.BranchByName(ctx, row.Branch)
	if err != nil {
		return nil, "", fmt.Errorf("buscar rama: %w", err)
	}
	if branch == nil {
		return nil, fmt.Sprintf("no existe rama %s", row.Branch), nil
	}

	var team *domain.Team
	if row.Team != "" {
		team, err = s.refs.TeamByName(ctx, row.Team)
		if err != nil {
			return nil, "", fmt.Errorf("buscar equipo: %w", err)
		}
		if team == nil {
			return nil, fmt.Sprintf("no existe equipo %s", row.Team), nil
		}
	}

	return &resolvedRow{
		row:        row,
		person:     person,
		tournament: tournament,
		category:   category,
		modality:   modality,
		branch:     branch,
		team:       team,
	}, "", nil
}
