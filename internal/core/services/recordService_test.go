package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func newRecordService(recordRepo *mockRecordRepo, vehicleRepo *mockVehicleRepo, cache *mockCache) *RecordService {
	if cache == nil {
		cache = &mockCache{}
	}
	return NewRecordService(recordRepo, vehicleRepo, mockLogger{}, validator.New(), cache)
}

func TestCreateRecord_SanitizesDirtyInput(t *testing.T) {
	vehicleID := uuid.New()
	ownerID := uuid.New()

	vehicleRepo := &mockVehicleRepo{
		GetVehicleByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: id, UserID: ownerID}, nil
		},
	}
	recordRepo := &mockRecordRepo{
		CreateRecordFunc: func(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
			return record, nil
		},
	}

	svc := newRecordService(recordRepo, vehicleRepo, nil)

	record, err := svc.CreateRecord(context.Background(), &domain.RecordInput{
		VehicleID: vehicleID.String(),
		Date:      "2024-03-01",
		Task:      "Oil change",
		Cost:      "$1,200.50",
		Mileage:   "42,500",
	})
	if err != nil {
		t.Fatalf("CreateRecord returned error: %v", err)
	}
	if record.Cost != 1200.50 {
		t.Errorf("Cost = %v; want 1200.50", record.Cost)
	}
	if record.Mileage != 42500 {
		t.Errorf("Mileage = %d; want 42500", record.Mileage)
	}
	if record.Category != domain.DefaultCategory {
		t.Errorf("Category = %q; want default %q", record.Category, domain.DefaultCategory)
	}
}

func TestCreateRecord_DefaultsDateToToday(t *testing.T) {
	vehicleID := uuid.New()

	vehicleRepo := &mockVehicleRepo{
		GetVehicleByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: id, UserID: uuid.New()}, nil
		},
	}
	recordRepo := &mockRecordRepo{
		CreateRecordFunc: func(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
			return record, nil
		},
	}

	svc := newRecordService(recordRepo, vehicleRepo, nil)

	record, err := svc.CreateRecord(context.Background(), &domain.RecordInput{
		VehicleID: vehicleID.String(),
		Task:      "Tire rotation",
	})
	if err != nil {
		t.Fatalf("CreateRecord returned error: %v", err)
	}
	want := time.Now().UTC().Format("2006-01-02")
	if record.ServiceDate != want {
		t.Errorf("ServiceDate = %q; want %q", record.ServiceDate, want)
	}
}

func TestCreateRecord_UnknownVehicle(t *testing.T) {
	vehicleRepo := &mockVehicleRepo{
		GetVehicleByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
			return nil, domain.ErrNotFound
		},
	}
	recordRepo := &mockRecordRepo{
		CreateRecordFunc: func(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
			t.Fatal("CreateRecord should not reach the repository")
			return nil, nil
		},
	}

	svc := newRecordService(recordRepo, vehicleRepo, nil)

	_, err := svc.CreateRecord(context.Background(), &domain.RecordInput{
		VehicleID: uuid.New().String(),
		Task:      "Oil change",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("CreateRecord error = %v; want ErrNotFound", err)
	}
}

func TestCreateRecord_EmptyTask(t *testing.T) {
	vehicleRepo := &mockVehicleRepo{
		GetVehicleByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: id, UserID: uuid.New()}, nil
		},
	}
	recordRepo := &mockRecordRepo{
		CreateRecordFunc: func(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
			t.Fatal("CreateRecord should not reach the repository")
			return nil, nil
		},
	}

	svc := newRecordService(recordRepo, vehicleRepo, nil)

	_, err := svc.CreateRecord(context.Background(), &domain.RecordInput{
		VehicleID: uuid.New().String(),
		Task:      "",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateRecord error = %v; want ErrValidation", err)
	}
}

func TestCreateRecord_InvalidVehicleID(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{}, &mockVehicleRepo{}, nil)

	_, err := svc.CreateRecord(context.Background(), &domain.RecordInput{
		VehicleID: "not-a-uuid",
		Task:      "Oil change",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateRecord error = %v; want ErrValidation", err)
	}
}

func TestCreateRecord_InvalidatesSummaryCache(t *testing.T) {
	ownerID := uuid.New()
	var deletedKey string

	vehicleRepo := &mockVehicleRepo{
		GetVehicleByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
			return &domain.Vehicle{ID: id, UserID: ownerID}, nil
		},
	}
	recordRepo := &mockRecordRepo{
		CreateRecordFunc: func(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
			return record, nil
		},
	}
	cache := &mockCache{
		DeleteFunc: func(key string) error {
			deletedKey = key
			return nil
		},
	}

	svc := newRecordService(recordRepo, vehicleRepo, cache)

	_, err := svc.CreateRecord(context.Background(), &domain.RecordInput{
		VehicleID: uuid.New().String(),
		Task:      "Brake pads",
	})
	if err != nil {
		t.Fatalf("CreateRecord returned error: %v", err)
	}
	want := "summary:" + ownerID.String()
	if deletedKey != want {
		t.Errorf("cache key deleted = %q; want %q", deletedKey, want)
	}
}

func TestGetRecordsByVehicleID_InvalidID(t *testing.T) {
	svc := newRecordService(&mockRecordRepo{}, &mockVehicleRepo{}, nil)

	_, err := svc.GetRecordsByVehicleID(context.Background(), "nope")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("GetRecordsByVehicleID error = %v; want ErrValidation", err)
	}
}

func TestDeleteRecord_PassesThroughRepoError(t *testing.T) {
	wantErr := errors.New("db down")
	recordRepo := &mockRecordRepo{
		DeleteRecordFunc: func(ctx context.Context, recordID uuid.UUID) error {
			return wantErr
		},
	}

	svc := newRecordService(recordRepo, &mockVehicleRepo{}, nil)

	err := svc.DeleteRecord(context.Background(), uuid.New().String())
	if !errors.Is(err, wantErr) {
		t.Errorf("DeleteRecord error = %v; want %v", err, wantErr)
	}
}
