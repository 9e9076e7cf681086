package ports

import (
	"context"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
)

type RecordRepository interface {
	// CreateRecord inserts the record and bumps the owning vehicle's
	// current_mileage to the running maximum, both inside one transaction.
	CreateRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error)
	GetRecordsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error)
	DeleteRecord(ctx context.Context, recordID uuid.UUID) error
}

type RecordService interface {
	CreateRecord(ctx context.Context, input *domain.RecordInput) (*domain.MaintenanceRecord, error)
	GetRecordsByVehicleID(ctx context.Context, vehicleID string) ([]*domain.MaintenanceRecord, error)
	DeleteRecord(ctx context.Context, recordID string) error
}
