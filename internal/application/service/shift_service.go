package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/apperror"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// ShiftService handles the cashier shift ledger
type ShiftService struct {
	shiftRepo  repository.ShiftRepository
	washTxRepo repository.WashTransactionRepository
	txManager  repository.TxManager
}

// NewShiftService creates a new shift service
func NewShiftService(
	shiftRepo repository.ShiftRepository,
	washTxRepo repository.WashTransactionRepository,
	txManager repository.TxManager,
) *ShiftService {
	return &ShiftService{
		shiftRepo:  shiftRepo,
		washTxRepo: washTxRepo,
		txManager:  txManager,
	}
}

// StartShiftInput represents the start shift input
type StartShiftInput struct {
	UserID       uuid.UUID
	InitialCash  int64
	ReceivedFrom string
}

// StartShift opens a new active shift. A user can hold at most one active
// shift; a second start is a conflict. A partial unique index backs the check
// under concurrent requests.
func (s *ShiftService) StartShift(ctx context.Context, input *StartShiftInput) (*entity.Shift, error) {
	if input.InitialCash < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "initial_cash", Message: "must not be negative"},
		})
	}

	active, err := s.shiftRepo.GetActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperror.NewConflictError("An active shift already exists for this user")
	}

	shift := &entity.Shift{
		UserID:       input.UserID,
		StartTime:    time.Now(),
		InitialCash:  input.InitialCash,
		ReceivedFrom: input.ReceivedFrom,
		Status:       enum.ShiftStatusActive,
	}
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// CloseShiftSummary is the reconciliation result returned on close. The
// difference is informational; a short drawer never blocks the close.
type CloseShiftSummary struct {
	Shift        *entity.Shift `json:"shift"`
	ExpectedCash int64         `json:"expected_cash"`
	FinalCash    int64         `json:"final_cash"`
	Difference   int64         `json:"difference"`
}

// CloseShift closes an active shift. total_sales sums the shift's completed
// wash transactions only; POS settlements are deliberately excluded from
// this ledger.
func (s *ShiftService) CloseShift(ctx context.Context, shiftID uuid.UUID, physicalCash int64) (*CloseShiftSummary, error) {
	if physicalCash < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "physical_cash", Message: "must not be negative"},
		})
	}

	var summary *CloseShiftSummary
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		shift, err := s.shiftRepo.GetByID(ctx, shiftID)
		if err != nil {
			return err
		}
		if shift == nil {
			return apperror.NewNotFoundError("Shift")
		}
		if shift.Status != enum.ShiftStatusActive {
			return apperror.NewInvalidStateError("Shift is not active")
		}

		totalSales, err := s.washTxRepo.SumCompletedByShift(ctx, shiftID)
		if err != nil {
			return err
		}

		now := time.Now()
		shift.TotalSales = totalSales
		shift.FinalCash = &physicalCash
		shift.EndTime = &now
		shift.Status = enum.ShiftStatusClosed
		if err := s.shiftRepo.Update(ctx, shift); err != nil {
			return err
		}

		expected := shift.ExpectedCash()
		summary = &CloseShiftSummary{
			Shift:        shift,
			ExpectedCash: expected,
			FinalCash:    physicalCash,
			Difference:   physicalCash - expected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// CloseActiveShift closes the caller's active shift.
func (s *ShiftService) CloseActiveShift(ctx context.Context, userID uuid.UUID, physicalCash int64) (*CloseShiftSummary, error) {
	shift, err := s.shiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Active shift")
	}
	return s.CloseShift(ctx, shift.ID, physicalCash)
}

// CancelShift voids an active shift without reconciliation. Terminal.
func (s *ShiftService) CancelShift(ctx context.Context, shiftID uuid.UUID) (*entity.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Shift")
	}
	if !shift.Status.CanTransition(enum.ShiftStatusCanceled) {
		return nil, apperror.NewInvalidStateError("Shift is not active")
	}

	now := time.Now()
	shift.EndTime = &now
	shift.Status = enum.ShiftStatusCanceled
	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// ShiftStats is the live view of the user's current shift
type ShiftStats struct {
	Shift            *entity.Shift `json:"shift"`
	SalesSoFar       int64         `json:"sales_so_far"`
	TransactionCount int64         `json:"transaction_count"`
	ExpectedCash     int64         `json:"expected_cash"`
}

// CurrentStats returns the user's active shift with live figures
func (s *ShiftService) CurrentStats(ctx context.Context, userID uuid.UUID) (*ShiftStats, error) {
	shift, err := s.shiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Active shift")
	}

	salesSoFar, err := s.washTxRepo.SumCompletedByShift(ctx, shift.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.washTxRepo.CountByShift(ctx, shift.ID)
	if err != nil {
		return nil, err
	}

	return &ShiftStats{
		Shift:            shift,
		SalesSoFar:       salesSoFar,
		TransactionCount: count,
		ExpectedCash:     shift.InitialCash + salesSoFar,
	}, nil
}

// ShiftTotals splits transaction totals into cash and debit (everything
// non-cash).
type ShiftTotals struct {
	Cash  int64 `json:"cash"`
	Debit int64 `json:"debit"`
	Total int64 `json:"total"`
}

// ShiftTransactionsResult bundles a transaction page with its page totals
// and the shift-wide totals.
type ShiftTransactionsResult struct {
	Transactions *pagination.PaginatedResult[entity.WashTransaction] `json:"transactions"`
	PageTotals   ShiftTotals                                         `json:"page_totals"`
	ShiftTotals  ShiftTotals                                         `json:"shift_totals"`
}

// ShiftTransactions pages through the wash transactions owned by a shift
func (s *ShiftService) ShiftTransactions(ctx context.Context, shiftID uuid.UUID, params *pagination.PaginationParams) (*ShiftTransactionsResult, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewNotFoundError("Shift")
	}

	txs, total, err := s.washTxRepo.ListByShift(ctx, shiftID, params)
	if err != nil {
		return nil, err
	}

	var pageTotals ShiftTotals
	for _, tx := range txs {
		if tx.PaymentMethod == enum.WashPaymentCash {
			pageTotals.Cash += tx.TotalPrice
		} else {
			pageTotals.Debit += tx.TotalPrice
		}
	}
	pageTotals.Total = pageTotals.Cash + pageTotals.Debit

	cashTotal, err := s.washTxRepo.SumByShiftAndMethod(ctx, shiftID, enum.WashPaymentCash)
	if err != nil {
		return nil, err
	}
	cashlessTotal, err := s.washTxRepo.SumByShiftAndMethod(ctx, shiftID, enum.WashPaymentCashless)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return &ShiftTransactionsResult{
		Transactions: pagination.NewPaginatedResult(txs, pag),
		PageTotals:   pageTotals,
		ShiftTotals: ShiftTotals{
			Cash:  cashTotal,
			Debit: cashlessTotal,
			Total: cashTotal + cashlessTotal,
		},
	}, nil
}

// ListShifts lists shifts, optionally restricted to one user
func (s *ShiftService) ListShifts(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Shift], error) {
	shifts, total, err := s.shiftRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(shifts, pag), nil
}
