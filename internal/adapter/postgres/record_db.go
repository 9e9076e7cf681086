package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// CreateRecord inserts the record and bumps the vehicle's current_mileage to
// the running maximum. Both statements run in one transaction; GREATEST keeps
// concurrent creates against the same vehicle from losing the max.
func (r *RecordRepository) CreateRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insertQuery := `INSERT INTO maintenance_records (id, vehicle_id, service_date, task, cost, mileage, category, verification_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, insertQuery,
		record.ID,
		record.VehicleID,
		record.ServiceDate,
		record.Task,
		record.Cost,
		record.Mileage,
		record.Category,
		record.VerificationHash,
	).Scan(
		&record.ID,
		&record.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("%w: required field is missing", domain.ErrValidation)
			case "23503":
				return nil, fmt.Errorf("%w: vehicle does not exist", domain.ErrNotFound)
			default:
				return nil, err
			}
		}
		return nil, err
	}

	updateQuery := `UPDATE vehicles
		SET current_mileage = GREATEST(current_mileage, $1), updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`

	result, err := tx.ExecContext(ctx, updateQuery, record.Mileage, record.VehicleID)
	if err != nil {
		return nil, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("%w: vehicle", domain.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return record, nil
}

// GetRecordsByVehicleID returns records most recent first; records sharing a
// service date keep their insertion order.
func (r *RecordRepository) GetRecordsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	query := `SELECT id, vehicle_id, service_date, task, cost, mileage, category, verification_hash, created_at
		FROM maintenance_records WHERE vehicle_id = $1
		ORDER BY service_date DESC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.MaintenanceRecord

	for rows.Next() {
		record := &domain.MaintenanceRecord{}
		var cost sql.NullFloat64
		var hash sql.NullString
		err := rows.Scan(
			&record.ID,
			&record.VehicleID,
			&record.ServiceDate,
			&record.Task,
			&cost,
			&record.Mileage,
			&record.Category,
			&hash,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		record.Cost = cost.Float64
		record.VerificationHash = hash.String
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, recordID uuid.UUID) error {
	query := `DELETE FROM maintenance_records WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, recordID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: record", domain.ErrNotFound)
	}

	return nil
}
