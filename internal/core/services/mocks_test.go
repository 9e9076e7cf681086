package services

import (
	"context"
	"errors"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	CreateUserFunc        func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.CreateUserFunc(ctx, user)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetUserByUsernameFunc(ctx, username)
}

type mockVehicleRepo struct {
	CreateVehicleFunc       func(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicleByIDFunc      func(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error)
	GetVehiclesByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Vehicle, error)
	DeleteVehicleFunc       func(ctx context.Context, vehicleID uuid.UUID) error
	GetGarageSummaryFunc    func(ctx context.Context, userID uuid.UUID) (*domain.GarageSummary, error)
}

func (m *mockVehicleRepo) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	return m.CreateVehicleFunc(ctx, vehicle)
}

func (m *mockVehicleRepo) GetVehicleByID(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	return m.GetVehicleByIDFunc(ctx, vehicleID)
}

func (m *mockVehicleRepo) GetVehiclesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Vehicle, error) {
	return m.GetVehiclesByUserIDFunc(ctx, userID)
}

func (m *mockVehicleRepo) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	return m.DeleteVehicleFunc(ctx, vehicleID)
}

func (m *mockVehicleRepo) GetGarageSummary(ctx context.Context, userID uuid.UUID) (*domain.GarageSummary, error) {
	return m.GetGarageSummaryFunc(ctx, userID)
}

type mockRecordRepo struct {
	CreateRecordFunc          func(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error)
	GetRecordsByVehicleIDFunc func(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error)
	DeleteRecordFunc          func(ctx context.Context, recordID uuid.UUID) error
}

func (m *mockRecordRepo) CreateRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	return m.CreateRecordFunc(ctx, record)
}

func (m *mockRecordRepo) GetRecordsByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	return m.GetRecordsByVehicleIDFunc(ctx, vehicleID)
}

func (m *mockRecordRepo) DeleteRecord(ctx context.Context, recordID uuid.UUID) error {
	return m.DeleteRecordFunc(ctx, recordID)
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockCache behaves as an always-miss cache unless funcs are set.
type mockCache struct {
	GetFunc    func(key string) ([]byte, error)
	SetFunc    func(key string, value []byte, ttl time.Duration) error
	DeleteFunc func(key string) error
}

func (m *mockCache) Get(key string) ([]byte, error) {
	if m.GetFunc == nil {
		return nil, errors.New("cache miss")
	}
	return m.GetFunc(key)
}

func (m *mockCache) Set(key string, value []byte, ttl time.Duration) error {
	if m.SetFunc == nil {
		return nil
	}
	return m.SetFunc(key, value, ttl)
}

func (m *mockCache) Delete(key string) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(key)
}
