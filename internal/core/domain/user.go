package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username" validate:"required,min=3,max=80"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
