package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// WashTransactionFilterParams are the supported wash transaction list filters
type WashTransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.WashTransactionStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

// WashTransactionRepository defines the interface for wash transaction data operations
type WashTransactionRepository interface {
	// Create persists the transaction together with its product lines.
	Create(ctx context.Context, wt *entity.WashTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WashTransaction, error)
	GetWithProducts(ctx context.Context, id uuid.UUID) (*entity.WashTransaction, error)
	Update(ctx context.Context, wt *entity.WashTransaction) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.WashTransactionStatus) error
	List(ctx context.Context, params *WashTransactionFilterParams) ([]entity.WashTransaction, int64, error)
	// ListByShift pages through the transactions owned by one shift, with
	// customer and product lines preloaded for the shift ledger view.
	ListByShift(ctx context.Context, shiftID uuid.UUID, params *pagination.PaginationParams) ([]entity.WashTransaction, int64, error)
	// SumCompletedByShift totals completed transactions owned by the shift.
	SumCompletedByShift(ctx context.Context, shiftID uuid.UUID) (int64, error)
	// SumByShiftAndMethod totals the shift's transactions paid with one method.
	SumByShiftAndMethod(ctx context.Context, shiftID uuid.UUID, method enum.WashPaymentMethod) (int64, error)
	// CountByShift counts every transaction owned by the shift.
	CountByShift(ctx context.Context, shiftID uuid.UUID) (int64, error)
	// CountCompletedByCustomer counts completed transactions for the counter cache.
	CountCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	// NextSequence returns the next daily transaction-number sequence.
	NextSequence(ctx context.Context, date time.Time) (int, error)
}
