package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
)

func TestGetSummary_EmptyGarage(t *testing.T) {
	vehicleRepo := &mockVehicleRepo{
		GetGarageSummaryFunc: func(ctx context.Context, userID uuid.UUID) (*domain.GarageSummary, error) {
			return &domain.GarageSummary{VehicleCount: 0, TotalCost: 0}, nil
		},
	}

	svc := NewSummaryService(vehicleRepo, mockLogger{}, &mockCache{})

	summary, err := svc.GetSummary(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if summary.VehicleCount != 0 || summary.TotalCost != 0 {
		t.Errorf("summary = %+v; want zero values", summary)
	}
}

func TestGetSummary_CacheHitSkipsRepo(t *testing.T) {
	cached, _ := json.Marshal(domain.GarageSummary{VehicleCount: 3, TotalCost: 512.40})
	cache := &mockCache{
		GetFunc: func(key string) ([]byte, error) {
			return cached, nil
		},
	}
	vehicleRepo := &mockVehicleRepo{
		GetGarageSummaryFunc: func(ctx context.Context, userID uuid.UUID) (*domain.GarageSummary, error) {
			t.Fatal("GetGarageSummary should not be called on a cache hit")
			return nil, nil
		},
	}

	svc := NewSummaryService(vehicleRepo, mockLogger{}, cache)

	summary, err := svc.GetSummary(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if summary.VehicleCount != 3 || summary.TotalCost != 512.40 {
		t.Errorf("summary = %+v; want cached values", summary)
	}
}

func TestGetSummary_CacheMissPopulatesCache(t *testing.T) {
	var setKey string
	cache := &mockCache{
		SetFunc: func(key string, value []byte, ttl time.Duration) error {
			setKey = key
			return nil
		},
	}
	vehicleRepo := &mockVehicleRepo{
		GetGarageSummaryFunc: func(ctx context.Context, userID uuid.UUID) (*domain.GarageSummary, error) {
			return &domain.GarageSummary{VehicleCount: 2, TotalCost: 99.99}, nil
		},
	}

	svc := NewSummaryService(vehicleRepo, mockLogger{}, cache)

	userID := uuid.New()
	summary, err := svc.GetSummary(context.Background(), userID.String())
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if summary.VehicleCount != 2 {
		t.Errorf("VehicleCount = %d; want 2", summary.VehicleCount)
	}
	want := "summary:" + userID.String()
	if setKey != want {
		t.Errorf("cache key set = %q; want %q", setKey, want)
	}
}

func TestGetSummary_InvalidUserID(t *testing.T) {
	svc := NewSummaryService(&mockVehicleRepo{}, mockLogger{}, &mockCache{})

	_, err := svc.GetSummary(context.Background(), "nope")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("GetSummary error = %v; want ErrValidation", err)
	}
}
