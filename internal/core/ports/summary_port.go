package ports

import (
	"context"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"
)

type SummaryService interface {
	GetSummary(ctx context.Context, userID string) (*domain.GarageSummary, error)
}
