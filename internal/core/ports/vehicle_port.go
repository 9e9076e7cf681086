package ports

import (
	"context"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
)

type VehicleRepository interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error)
	GetVehiclesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Vehicle, error)
	// DeleteVehicle removes the vehicle and all of its maintenance records in
	// a single transaction.
	DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error
	// GetGarageSummary joins vehicles and maintenance records for one user.
	GetGarageSummary(ctx context.Context, userID uuid.UUID) (*domain.GarageSummary, error)
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, input *domain.VehicleInput) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	GetVehiclesByUserID(ctx context.Context, userID string) ([]*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}
