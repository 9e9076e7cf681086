package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RecordService struct {
	recordRepo  ports.RecordRepository
	vehicleRepo ports.VehicleRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
	cache       ports.CachePort
}

func NewRecordService(
	recordRepo ports.RecordRepository,
	vehicleRepo ports.VehicleRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *RecordService {
	return &RecordService{
		recordRepo:  recordRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
		validate:    validate,
		cache:       cache,
	}
}

func (s *RecordService) CreateRecord(ctx context.Context, input *domain.RecordInput) (*domain.MaintenanceRecord, error) {
	vehicleUUID, err := uuid.Parse(input.VehicleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"vehicle_id": input.VehicleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid vehicle ID", domain.ErrValidation)
	}

	// The vehicle must exist; its owner is also needed to drop the cached
	// summary once the record lands.
	vehicle, err := s.vehicleRepo.GetVehicleByID(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to get vehicle for record", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": input.VehicleID,
		})
		return nil, err
	}

	record := &domain.MaintenanceRecord{
		ID:               uuid.New(),
		VehicleID:        vehicleUUID,
		ServiceDate:      input.Date,
		Task:             input.Task,
		Cost:             domain.SanitizeFloat(input.Cost, 0),
		Mileage:          domain.SanitizeInt(input.Mileage, 0),
		Category:         input.Category,
		VerificationHash: input.VerificationHash,
	}
	if record.ServiceDate == "" {
		record.ServiceDate = time.Now().UTC().Format("2006-01-02")
	}
	if record.Category == "" {
		record.Category = domain.DefaultCategory
	}

	if err := s.validate.Struct(record); err != nil {
		s.logger.Error("Record validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	createdRecord, err := s.recordRepo.CreateRecord(ctx, record)
	if err != nil {
		s.logger.Error("Failed to create record", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": input.VehicleID,
		})
		return nil, err
	}

	cacheKey := fmt.Sprintf("summary:%s", vehicle.UserID.String())
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate summary cache", map[string]interface{}{
			"error":   err.Error(),
			"user_id": vehicle.UserID.String(),
		})
	}

	s.logger.Info("Record created successfully", map[string]interface{}{
		"record_id":  createdRecord.ID,
		"vehicle_id": createdRecord.VehicleID,
		"mileage":    createdRecord.Mileage,
	})

	return createdRecord, nil
}

func (s *RecordService) GetRecordsByVehicleID(ctx context.Context, vehicleID string) ([]*domain.MaintenanceRecord, error) {
	vehicleUUID, err := uuid.Parse(vehicleID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"vehicle_id": vehicleID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid vehicle ID", domain.ErrValidation)
	}

	records, err := s.recordRepo.GetRecordsByVehicleID(ctx, vehicleUUID)
	if err != nil {
		s.logger.Error("Failed to get records", map[string]interface{}{
			"error":      err.Error(),
			"vehicle_id": vehicleID,
		})
		return nil, err
	}

	s.logger.Info("Retrieved records for vehicle", map[string]interface{}{
		"vehicle_id":    vehicleID,
		"records_count": len(records),
	})

	return records, nil
}

func (s *RecordService) DeleteRecord(ctx context.Context, recordID string) error {
	recordUUID, err := uuid.Parse(recordID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"record_id": recordID,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: invalid record ID", domain.ErrValidation)
	}

	if err := s.recordRepo.DeleteRecord(ctx, recordUUID); err != nil {
		s.logger.Error("Failed to delete record", map[string]interface{}{
			"error":     err.Error(),
			"record_id": recordID,
		})
		return err
	}

	s.logger.Info("Record deleted successfully", map[string]interface{}{
		"record_id": recordID,
	})

	return nil
}
