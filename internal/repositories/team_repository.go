package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	"gearguard/pkg/apperrors"
)

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := r.storage.Query(ctx, `SELECT id, name, type, member_ids FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Type, &t.MemberIDs); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id string) (*entities.Team, error) {
	var t entities.Team
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, type, member_ids FROM teams WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Type, &t.MemberIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding team %s: %w", id, err)
	}
	return &t, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, t entities.Team) error {
	_, err := r.storage.Exec(ctx,
		`INSERT INTO teams (id, name, type, member_ids) VALUES ($1, $2, $3, $4)`,
		t.ID, t.Name, t.Type, t.MemberIDs,
	)
	if err != nil {
		return fmt.Errorf("creating team: %w", err)
	}
	return nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, t entities.Team) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE teams SET name = $2, type = $3, member_ids = $4 WHERE id = $1`,
		t.ID, t.Name, t.Type, t.MemberIDs,
	)
	if err != nil {
		return fmt.Errorf("updating team %s: %w", t.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting team %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
