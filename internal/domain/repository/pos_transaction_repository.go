package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// POSTransactionFilterParams are the supported POS transaction list filters
type POSTransactionFilterParams struct {
	Pagination    *pagination.PaginationParams
	Status        *enum.POSTransactionStatus
	PaymentMethod *enum.PaymentMethod
	CustomerID    *uuid.UUID
	ShiftID       *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	Search        string
}

// POSTransactionRepository defines the interface for settlement data operations
type POSTransactionRepository interface {
	// Create persists the transaction together with its item lines.
	Create(ctx context.Context, t *entity.POSTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.POSTransaction, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.POSTransaction, error)
	Update(ctx context.Context, t *entity.POSTransaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *POSTransactionFilterParams) ([]entity.POSTransaction, int64, error)
	// HasCompletedForWashTransaction reports whether a completed settlement
	// already references the wash transaction.
	HasCompletedForWashTransaction(ctx context.Context, washTransactionID uuid.UUID) (bool, error)
	// HasCompletedForWorkOrder reports whether a completed settlement already
	// references the work order.
	HasCompletedForWorkOrder(ctx context.Context, workOrderID uuid.UUID) (bool, error)
	// ListCompletedByDate returns completed transactions for one calendar day,
	// items preloaded, for the daily sales report.
	ListCompletedByDate(ctx context.Context, date time.Time) ([]entity.POSTransaction, error)
	// CountCompletedByCustomer counts completed settlements for the counter cache.
	CountCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	// CountPremiumCompletedByCustomer counts completed settlements whose linked
	// work order carries at least one premium service line.
	CountPremiumCompletedByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	// NextSequence returns the next daily transaction-number sequence.
	NextSequence(ctx context.Context, date time.Time) (int, error)
}
