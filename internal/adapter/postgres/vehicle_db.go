package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{
		db,
	}
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `INSERT INTO vehicles (id, user_id, make, model, year, license_plate, current_mileage)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		vehicle.ID,
		vehicle.UserID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.LicensePlate,
		vehicle.CurrentMileage,
	).Scan(
		&vehicle.ID,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("%w: required field is missing", domain.ErrValidation)
			case "23503":
				return nil, fmt.Errorf("%w: user does not exist", domain.ErrNotFound)
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return vehicle, nil
}

func (r *VehicleRepository) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	query := `SELECT id, user_id, make, model, year, license_plate, current_mileage, created_at, updated_at
              FROM vehicles WHERE id = $1`

	vehicle := &domain.Vehicle{}
	var plate sql.NullString
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&plate,
		&vehicle.CurrentMileage,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: vehicle", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	vehicle.LicensePlate = plate.String

	return vehicle, nil
}

func (r *VehicleRepository) GetVehiclesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Vehicle, error) {
	query := `SELECT id, user_id, make, model, year, license_plate, current_mileage, created_at, updated_at
              FROM vehicles WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle

	for rows.Next() {
		vehicle := &domain.Vehicle{}
		var plate sql.NullString
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.UserID,
			&vehicle.Make,
			&vehicle.Model,
			&vehicle.Year,
			&plate,
			&vehicle.CurrentMileage,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		vehicle.LicensePlate = plate.String
		vehicles = append(vehicles, vehicle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// DeleteVehicle removes the vehicle and all of its maintenance records in one
// transaction so a failure partway leaves no partial state.
func (r *VehicleRepository) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM maintenance_records WHERE vehicle_id = $1`, vehicleID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, vehicleID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: vehicle", domain.ErrNotFound)
	}

	return tx.Commit()
}

func (r *VehicleRepository) GetGarageSummary(ctx context.Context, userID uuid.UUID) (*domain.GarageSummary, error) {
	query := `SELECT COUNT(DISTINCT v.id), COALESCE(SUM(m.cost), 0)
		FROM vehicles v
		LEFT JOIN maintenance_records m ON m.vehicle_id = v.id
		WHERE v.user_id = $1`

	summary := &domain.GarageSummary{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&summary.VehicleCount,
		&summary.TotalCost,
	)
	if err != nil {
		return nil, err
	}

	return summary, nil
}
