package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// ShiftRepository defines the interface for shift ledger data operations
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error)
	// GetActiveByUser returns the user's active shift, or nil when none is open.
	GetActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Shift, error)
	Update(ctx context.Context, shift *entity.Shift) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Shift, int64, error)
}
