package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is applied when a record is created without one.
const DefaultCategory = "general"

type MaintenanceRecord struct {
	ID               uuid.UUID `json:"id"`
	VehicleID        uuid.UUID `json:"vehicle_id" validate:"required"`
	ServiceDate      string    `json:"date" validate:"required"` // ISO-8601, kept as text so date ordering is lexicographic
	Task             string    `json:"task" validate:"required,max=500"`
	Cost             float64   `json:"cost" validate:"min=0"`
	Mileage          int       `json:"mileage" validate:"min=0"`
	Category         string    `json:"category"`
	VerificationHash string    `json:"verification_hash,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// RecordInput carries the raw create payload. Cost and mileage may arrive as
// dirty text (OCR extraction, currency markers) and go through sanitization.
type RecordInput struct {
	VehicleID        string
	Date             string
	Task             string
	Cost             string
	Mileage          string
	Category         string
	VerificationHash string
}
