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

const workCenterColumns = `id, name, description, department, tag,
	alternative_work_center_ids, cost_per_hour, capacity, oee_target`

type WorkCenterRepository struct {
	storage *pgxpool.Pool
}

func NewWorkCenterRepository(storage *pgxpool.Pool) WorkCenterRepositoryInterface {
	return &WorkCenterRepository{storage: storage}
}

func (r *WorkCenterRepository) ListWorkCenters(ctx context.Context) ([]entities.WorkCenter, error) {
	query := fmt.Sprintf(`SELECT %s FROM work_centers ORDER BY name`, workCenterColumns)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work centers: %w", err)
	}
	defer rows.Close()

	centers := make([]entities.WorkCenter, 0)
	for rows.Next() {
		wc, err := scanWorkCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning work center: %w", err)
		}
		centers = append(centers, wc)
	}
	return centers, rows.Err()
}

func (r *WorkCenterRepository) FindWorkCenter(ctx context.Context, id string) (*entities.WorkCenter, error) {
	query := fmt.Sprintf(`SELECT %s FROM work_centers WHERE id = $1`, workCenterColumns)

	wc, err := scanWorkCenter(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding work center %s: %w", id, err)
	}
	return &wc, nil
}

func (r *WorkCenterRepository) CreateWorkCenter(ctx context.Context, wc entities.WorkCenter) error {
	query := `
		INSERT INTO work_centers
			(id, name, description, department, tag, alternative_work_center_ids,
			 cost_per_hour, capacity, oee_target)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.storage.Exec(ctx, query,
		wc.ID, wc.Name, wc.Description, wc.Department, wc.Tag,
		wc.AlternativeWorkCenterIDs, wc.CostPerHour, wc.Capacity, wc.OEETarget,
	)
	if err != nil {
		return fmt.Errorf("creating work center: %w", err)
	}
	return nil
}

func (r *WorkCenterRepository) UpdateWorkCenter(ctx context.Context, wc entities.WorkCenter) error {
	query := `
		UPDATE work_centers SET
			name = $2, description = $3, department = $4, tag = $5,
			alternative_work_center_ids = $6, cost_per_hour = $7, capacity = $8, oee_target = $9
		WHERE id = $1`

	tag, err := r.storage.Exec(ctx, query,
		wc.ID, wc.Name, wc.Description, wc.Department, wc.Tag,
		wc.AlternativeWorkCenterIDs, wc.CostPerHour, wc.Capacity, wc.OEETarget,
	)
	if err != nil {
		return fmt.Errorf("updating work center %s: %w", wc.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *WorkCenterRepository) DeleteWorkCenter(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM work_centers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting work center %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanWorkCenter(row pgx.Row) (entities.WorkCenter, error) {
	var wc entities.WorkCenter
	err := row.Scan(
		&wc.ID, &wc.Name, &wc.Description, &wc.Department, &wc.Tag,
		&wc.AlternativeWorkCenterIDs, &wc.CostPerHour, &wc.Capacity, &wc.OEETarget,
	)
	return wc, err
}
