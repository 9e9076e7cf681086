package domain

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	Make           string    `json:"make" validate:"required,max=80"`
	Model          string    `json:"model" validate:"required,max=80"`
	Year           int       `json:"year" validate:"min=0,max=9999"`
	LicensePlate   string    `json:"license_plate,omitempty" validate:"max=17"`
	CurrentMileage int       `json:"current_mileage" validate:"min=0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// VehicleInput carries the raw create payload. Year and mileage stay strings
// until sanitized because the frontend submits free-form text.
type VehicleInput struct {
	UserID         string
	Make           string
	Model          string
	Year           string
	LicensePlate   string
	CurrentMileage string
}
