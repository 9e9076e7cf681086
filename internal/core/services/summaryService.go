package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/google/uuid"
)

const summaryCacheTTL = 5 * time.Minute

type SummaryService struct {
	vehicleRepo ports.VehicleRepository
	logger      ports.LoggerPort
	cache       ports.CachePort
}

func NewSummaryService(
	vehicleRepo ports.VehicleRepository,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *SummaryService {
	return &SummaryService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
		cache:       cache,
	}
}

func (s *SummaryService) GetSummary(ctx context.Context, userID string) (*domain.GarageSummary, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: invalid user ID", domain.ErrValidation)
	}

	cacheKey := fmt.Sprintf("summary:%s", userID)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedSummary domain.GarageSummary
		if err := json.Unmarshal(cachedData, &cachedSummary); err == nil {
			s.logger.Debug("Summary found in cache", map[string]interface{}{
				"user_id": userID,
			})
			return &cachedSummary, nil
		}
	}

	summary, err := s.vehicleRepo.GetGarageSummary(ctx, userUUID)
	if err != nil {
		s.logger.Error("Failed to get summary", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	summaryData, err := json.Marshal(summary)
	if err != nil {
		s.logger.Warn("Failed to marshal summary for cache", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
	} else {
		if err := s.cache.Set(cacheKey, summaryData, summaryCacheTTL); err != nil {
			s.logger.Warn("Failed to cache summary", map[string]interface{}{
				"error":   err.Error(),
				"user_id": userID,
			})
		}
	}

	s.logger.Info("Computed garage summary", map[string]interface{}{
		"user_id":       userID,
		"vehicle_count": summary.VehicleCount,
	})

	return summary, nil
}
