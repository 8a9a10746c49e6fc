package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/board"
	"gearguard/internal/entities"
	"gearguard/pkg/apperrors"
)

const requestColumns = `id, subject, equipment_id, assigned_technician_id, team_id, requester_id,
	due_date, status, request_type, priority, scheduled_date, duration, notes, created_at, updated_at`

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

func (r *RequestRepository) ListRequests(ctx context.Context, f board.Filters) ([]entities.MaintenanceRequest, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(requestColumns).
		From("maintenance_requests").
		OrderBy("created_at DESC")

	if len(f.TeamIDs) > 0 {
		builder = builder.Where(sq.Eq{"team_id": f.TeamIDs})
	}
	if len(f.TechnicianIDs) > 0 {
		builder = builder.Where(sq.Eq{"assigned_technician_id": f.TechnicianIDs})
	}
	if len(f.RequestTypes) > 0 {
		types := make([]string, len(f.RequestTypes))
		for i, t := range f.RequestTypes {
			types[i] = string(t)
		}
		builder = builder.Where(sq.Eq{"request_type": types})
	}
	if f.EquipmentID != "" {
		builder = builder.Where(sq.Eq{"equipment_id": f.EquipmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building request list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing maintenance requests: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning maintenance request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM maintenance_requests WHERE id = $1`, requestColumns)

	row := r.storage.QueryRow(ctx, query, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding maintenance request %s: %w", id, err)
	}
	return &req, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req entities.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests
			(id, subject, equipment_id, assigned_technician_id, team_id, requester_id,
			 due_date, status, request_type, priority, scheduled_date, duration, notes,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.storage.Exec(ctx, query,
		req.ID, req.Subject, req.EquipmentID, req.AssignedTechnicianID, req.TeamID,
		req.RequesterID, req.DueDate, req.Status, req.RequestType, req.Priority,
		req.ScheduledDate, req.Duration, req.Notes, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating maintenance request: %w", err)
	}
	return nil
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, req entities.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests SET
			subject = $2, equipment_id = $3, assigned_technician_id = $4, team_id = $5,
			requester_id = $6, due_date = $7, status = $8, request_type = $9,
			priority = $10, scheduled_date = $11, duration = $12, notes = $13,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.storage.Exec(ctx, query,
		req.ID, req.Subject, req.EquipmentID, req.AssignedTechnicianID, req.TeamID,
		req.RequesterID, req.DueDate, req.Status, req.RequestType, req.Priority,
		req.ScheduledDate, req.Duration, req.Notes,
	)
	if err != nil {
		return fmt.Errorf("updating maintenance request %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, id string, status entities.RequestStatus) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE maintenance_requests SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("updating status of maintenance request %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting maintenance request %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanRequest(row pgx.Row) (entities.MaintenanceRequest, error) {
	var req entities.MaintenanceRequest
	err := row.Scan(
		&req.ID, &req.Subject, &req.EquipmentID, &req.AssignedTechnicianID,
		&req.TeamID, &req.RequesterID, &req.DueDate, &req.Status, &req.RequestType,
		&req.Priority, &req.ScheduledDate, &req.Duration, &req.Notes,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}
