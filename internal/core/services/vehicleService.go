package services

import (
	"context"
	"fmt"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type VehicleService struct {
	vehicleRepo ports.VehicleRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	cache       ports.CachePort
}

func NewVehicleService(
	vehicleRepo ports.VehicleRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
		validate:    validate,
		cache:       cache,
	}
}

func (s *VehicleService) CreateVehicle(ctx context.Context, input *domain.VehicleInput) (*domain.Vehicle, error) {
	userUUID, err := uuid.Parse(input.UserID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"user_id": input.UserID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid user ID", domain.ErrValidation)
	}

	vehicle := &domain.Vehicle{
		ID:             uuid.New(),
		UserID:         userUUID,
		Make:           input.Make,
		Model:          input.Model,
		Year:           domain.SanitizeInt(input.Year, 0),
		LicensePlate:   input.LicensePlate,
		CurrentMileage: domain.SanitizeInt(input.CurrentMileage, 0),
	}

	if err := s.validate.Struct(vehicle); err != nil {
		s.logger.Error("Vehicle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	createdVehicle, err := s.vehicleRepo.CreateVehicle(ctx, vehicle)
	if err != nil {
		s.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error":   err.Error(),
			"user_id": input.UserID,
		})
		return nil, err
	}

	s.invalidateSummary(userUUID)

	s.logger.Info("Vehicle created successfully", map[string]interface{}{
		"vehicle_id": createdVehicle.ID,
		"user_id":    createdVehicle.UserID,
	})

	return createdVehicle, nil
}

func (s *VehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid vehicle ID", domain.ErrValidation)
	}

	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	return vehicle, nil
}

func (s *VehicleService) GetVehiclesByUserID(ctx context.Context, userID string) ([]*domain.Vehicle, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid user ID", domain.ErrValidation)
	}

	vehicles, err := s.vehicleRepo.GetVehiclesByUserID(ctx, userUUID)
	if err != nil {
		s.logger.Error("Failed to get vehicles", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	s.logger.Info("Retrieved vehicles for user", map[string]interface{}{
		"user_id":        userID,
		"vehicles_count": len(vehicles),
	})

	return vehicles, nil
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return fmt.Errorf("%w: invalid vehicle ID", domain.ErrValidation)
	}

	// Owner is needed to drop the cached summary after the delete.
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return err
	}

	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleUUID); err != nil {
		s.logger.Error("Failed to delete vehicle", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return err
	}

	s.invalidateSummary(vehicle.UserID)

	s.logger.Info("Vehicle deleted successfully", map[string]interface{}{
		"vehicle_id": vehicleID,
		"user_id":    vehicle.UserID,
	})

	return nil
}

func (s *VehicleService) invalidateSummary(userID uuid.UUID) {
	cacheKey := fmt.Sprintf("summary:%s", userID.String())
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate summary cache", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
	}
}
