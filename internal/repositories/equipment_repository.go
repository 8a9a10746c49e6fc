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

const equipmentColumns = `id, name, serial_number, department, location, category,
	maintenance_team_id, assigned_employee_id, assigned_technician_id,
	purchase_date, warranty_expiry, assigned_date, is_scrapped, status, health, description`

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) ListEquipment(ctx context.Context) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM equipment ORDER BY name`, equipmentColumns)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing equipment: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning equipment: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM equipment WHERE id = $1`, equipmentColumns)

	e, err := scanEquipment(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("finding equipment %s: %w", id, err)
	}
	return &e, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, e entities.Equipment) error {
	query := `
		INSERT INTO equipment
			(id, name, serial_number, department, location, category, maintenance_team_id,
			 assigned_employee_id, assigned_technician_id, purchase_date, warranty_expiry,
			 assigned_date, is_scrapped, status, health, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.storage.Exec(ctx, query,
		e.ID, e.Name, e.SerialNumber, e.Department, e.Location, e.Category,
		e.MaintenanceTeamID, e.AssignedEmployeeID, e.AssignedTechnicianID,
		e.PurchaseDate, e.WarrantyExpiry, e.AssignedDate, e.IsScrapped,
		e.Status, e.Health, e.Description,
	)
	if err != nil {
		return fmt.Errorf("creating equipment: %w", err)
	}
	return nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, e entities.Equipment) error {
	query := `
		UPDATE equipment SET
			name = $2, serial_number = $3, department = $4, location = $5, category = $6,
			maintenance_team_id = $7, assigned_employee_id = $8, assigned_technician_id = $9,
			purchase_date = $10, warranty_expiry = $11, assigned_date = $12,
			is_scrapped = $13, status = $14, health = $15, description = $16
		WHERE id = $1`

	tag, err := r.storage.Exec(ctx, query,
		e.ID, e.Name, e.SerialNumber, e.Department, e.Location, e.Category,
		e.MaintenanceTeamID, e.AssignedEmployeeID, e.AssignedTechnicianID,
		e.PurchaseDate, e.WarrantyExpiry, e.AssignedDate, e.IsScrapped,
		e.Status, e.Health, e.Description,
	)
	if err != nil {
		return fmt.Errorf("updating equipment %s: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting equipment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanEquipment(row pgx.Row) (entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Department, &e.Location, &e.Category,
		&e.MaintenanceTeamID, &e.AssignedEmployeeID, &e.AssignedTechnicianID,
		&e.PurchaseDate, &e.WarrantyExpiry, &e.AssignedDate, &e.IsScrapped,
		&e.Status, &e.Health, &e.Description,
	)
	return e, err
}
