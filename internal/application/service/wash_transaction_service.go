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
	"github.com/kilatwash/washpos-api/pkg/utils"
)

// WashTransactionService handles the per-vehicle wash transaction records
type WashTransactionService struct {
	washTxRepo   repository.WashTransactionRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.CustomerVehicleRepository
	productRepo  repository.ProductRepository
	shiftRepo    repository.ShiftRepository
	txManager    repository.TxManager
}

// NewWashTransactionService creates a new wash transaction service
func NewWashTransactionService(
	washTxRepo repository.WashTransactionRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.CustomerVehicleRepository,
	productRepo repository.ProductRepository,
	shiftRepo repository.ShiftRepository,
	txManager repository.TxManager,
) *WashTransactionService {
	return &WashTransactionService{
		washTxRepo:   washTxRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		productRepo:  productRepo,
		shiftRepo:    shiftRepo,
		txManager:    txManager,
	}
}

// WashProductInput is a product line on a wash transaction
type WashProductInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateWashTransactionInput represents the create wash transaction input
type CreateWashTransactionInput struct {
	CustomerID        uuid.UUID
	CustomerVehicleID uuid.UUID
	UserID            uuid.UUID
	PaymentMethod     enum.WashPaymentMethod
	Products          []WashProductInput
}

// CreateWashTransaction creates a pending wash transaction. Product lines
// snapshot price and subtotal from the product records; total_price is the
// sum of subtotals. The creating user's active shift (if any) owns the
// transaction.
func (s *WashTransactionService) CreateWashTransaction(ctx context.Context, input *CreateWashTransactionInput) (*entity.WashTransaction, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.CustomerVehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}

	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "unknown payment method"},
		})
	}

	// Batch fetch products (prevents N+1); missing IDs become field errors.
	productIDs := make([]uuid.UUID, len(input.Products))
	for i, line := range input.Products {
		productIDs[i] = line.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var total int64
	lines := make([]entity.WashTransactionProduct, 0, len(input.Products))
	var fieldErrors []apperror.FieldError
	for _, line := range input.Products {
		product, exists := productMap[line.ProductID]
		if !exists {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: "products", Message: "product " + line.ProductID.String() + " not found",
			})
			continue
		}
		if line.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: "products", Message: "quantity must be positive",
			})
			continue
		}
		subtotal := product.Price * int64(line.Quantity)
		total += subtotal
		lines = append(lines, entity.WashTransactionProduct{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price,
			Subtotal:  subtotal,
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	shift, err := s.shiftRepo.GetActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	var shiftID *uuid.UUID
	if shift != nil {
		shiftID = &shift.ID
	}

	var wt *entity.WashTransaction
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		now := time.Now()
		seq, err := s.washTxRepo.NextSequence(ctx, now)
		if err != nil {
			return err
		}

		wt = &entity.WashTransaction{
			TransactionNumber: utils.FormatDocNumber("WT", now, seq),
			CustomerID:        input.CustomerID,
			CustomerVehicleID: input.CustomerVehicleID,
			ShiftID:           shiftID,
			Status:            enum.WashTransactionStatusPending,
			PaymentMethod:     input.PaymentMethod,
			TotalPrice:        total,
			Products:          lines,
		}
		return s.washTxRepo.Create(ctx, wt)
	})
	if err != nil {
		return nil, err
	}

	return s.washTxRepo.GetWithProducts(ctx, wt.ID)
}

// GetWashTransaction retrieves a wash transaction with its product lines
func (s *WashTransactionService) GetWashTransaction(ctx context.Context, id uuid.UUID) (*entity.WashTransaction, error) {
	wt, err := s.washTxRepo.GetWithProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	if wt == nil {
		return nil, apperror.NewNotFoundError("Wash transaction")
	}
	return wt, nil
}

// ListWashTransactions lists wash transactions with filtering
func (s *WashTransactionService) ListWashTransactions(ctx context.Context, params *repository.WashTransactionFilterParams) (*pagination.PaginatedResult[entity.WashTransaction], error) {
	txs, total, err := s.washTxRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txs, pag), nil
}

// UpdateStatus moves a wash transaction through its lifecycle, validated
// against the allowed-transition table.
func (s *WashTransactionService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.WashTransactionStatus) (*entity.WashTransaction, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "unknown wash transaction status"},
		})
	}

	wt, err := s.washTxRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wt == nil {
		return nil, apperror.NewNotFoundError("Wash transaction")
	}

	if !wt.Status.CanTransition(status) {
		return nil, apperror.NewInvalidStateError(
			"Cannot move wash transaction from " + wt.Status.String() + " to " + status.String())
	}

	if err := s.washTxRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	wt.Status = status
	return wt, nil
}
