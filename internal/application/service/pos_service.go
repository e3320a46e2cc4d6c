package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/apperror"
	"github.com/kilatwash/washpos-api/pkg/notify"
	"github.com/kilatwash/washpos-api/pkg/pagination"
	"github.com/kilatwash/washpos-api/pkg/payment"
	"github.com/kilatwash/washpos-api/pkg/utils"
)

// POSService handles settlement: direct checkout, wash transaction payment,
// QRIS charges, and the daily sales report.
type POSService struct {
	posTxRepo     repository.POSTransactionRepository
	washTxRepo    repository.WashTransactionRepository
	workOrderRepo repository.WorkOrderRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	shiftRepo     repository.ShiftRepository
	customers     *CustomerService
	printers      *PrinterService
	notifier      notify.Sender
	gateway       payment.Gateway
	txManager     repository.TxManager
}

// NewPOSService creates a new POS settlement service
func NewPOSService(
	posTxRepo repository.POSTransactionRepository,
	washTxRepo repository.WashTransactionRepository,
	workOrderRepo repository.WorkOrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	shiftRepo repository.ShiftRepository,
	customers *CustomerService,
	printers *PrinterService,
	notifier notify.Sender,
	gateway payment.Gateway,
	txManager repository.TxManager,
) *POSService {
	return &POSService{
		posTxRepo:     posTxRepo,
		washTxRepo:    washTxRepo,
		workOrderRepo: workOrderRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		shiftRepo:     shiftRepo,
		customers:     customers,
		printers:      printers,
		notifier:      notifier,
		gateway:       gateway,
		txManager:     txManager,
	}
}

// POSItemInput is a product line at checkout. Prices are never taken from
// the client.
type POSItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput represents the direct checkout (and work order settlement)
// input
type CheckoutInput struct {
	CustomerID        uuid.UUID
	CustomerVehicleID *uuid.UUID
	WorkOrderID       *uuid.UUID
	UserID            uuid.UUID
	PaymentMethod     enum.PaymentMethod
	AmountPaid        int64
	DiscountAmount    int64
	TaxAmount         int64
	Items             []POSItemInput
	PrintReceipt      bool
}

// CheckoutResult carries the settled transaction plus a warning when a
// requested receipt print failed. A failed print never fails the settlement.
type CheckoutResult struct {
	Transaction *entity.POSTransaction
	Warning     string
}

// Checkout settles a sale in one atomic transaction: item snapshots from
// server-side prices, derived totals, optional work order linkage, shift
// attribution, and counter recomputation. Paying less than the total is
// accepted as-is with change 0.
//
// A QRIS checkout with nothing paid yet is left pending; the charge is
// created and settled through the QRIS operations.
func (s *POSService) Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error) {
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "unknown payment method"},
		})
	}
	if input.AmountPaid < 0 || input.DiscountAmount < 0 || input.TaxAmount < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount_paid", Message: "amounts must not be negative"},
		})
	}
	if len(input.Items) == 0 && input.WorkOrderID == nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "at least one item is required"},
		})
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	source := enum.POSSourceDirectSale
	var workOrder *entity.WorkOrder
	if input.WorkOrderID != nil {
		workOrder, err = s.workOrderRepo.GetWithLines(ctx, *input.WorkOrderID)
		if err != nil {
			return nil, err
		}
		if workOrder == nil {
			return nil, apperror.NewNotFoundError("Work order")
		}
		if workOrder.CustomerID != input.CustomerID {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "work_order_id", Message: "work order does not belong to customer"},
			})
		}
		settled, err := s.posTxRepo.HasCompletedForWorkOrder(ctx, workOrder.ID)
		if err != nil {
			return nil, err
		}
		if settled {
			return nil, apperror.NewConflictError("Work order already settled")
		}
		source = enum.POSSourceFromWorkOrder
	}

	// Batch fetch products; every missing ID is a field error and nothing
	// is written.
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subtotal int64
	var fieldErrors []apperror.FieldError
	lines := make([]entity.POSTransactionItem, 0, len(input.Items))
	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: "items", Message: "product " + item.ProductID.String() + " not found",
			})
			continue
		}
		if item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field: "items", Message: "quantity must be positive",
			})
			continue
		}
		lineSubtotal := product.Price * int64(item.Quantity)
		subtotal += lineSubtotal
		lines = append(lines, entity.POSTransactionItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Subtotal:  lineSubtotal,
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if workOrder != nil {
		subtotal += workOrder.Total()
	}

	total := subtotal + input.TaxAmount - input.DiscountAmount
	change := input.AmountPaid - total
	if change < 0 {
		change = 0
	}

	// Shift resolved once here; everything downstream receives the value.
	shift, err := s.shiftRepo.GetActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	var shiftID *uuid.UUID
	if shift != nil {
		shiftID = &shift.ID
	}

	status := enum.POSStatusCompleted
	if input.PaymentMethod == enum.PaymentQRIS && input.AmountPaid == 0 {
		status = enum.POSStatusPending
	}

	var posTx *entity.POSTransaction
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		now := time.Now()
		seq, err := s.posTxRepo.NextSequence(ctx, now)
		if err != nil {
			return err
		}

		posTx = &entity.POSTransaction{
			TransactionNumber: utils.FormatDocNumber("POS", now, seq),
			CustomerID:        input.CustomerID,
			CustomerVehicleID: input.CustomerVehicleID,
			WorkOrderID:       input.WorkOrderID,
			ShiftID:           shiftID,
			UserID:            input.UserID,
			Status:            status,
			Source:            source,
			PaymentMethod:     input.PaymentMethod,
			Subtotal:          subtotal,
			TaxAmount:         input.TaxAmount,
			DiscountAmount:    input.DiscountAmount,
			TotalAmount:       total,
			AmountPaid:        input.AmountPaid,
			ChangeAmount:      change,
			Items:             lines,
		}
		if status == enum.POSStatusCompleted {
			posTx.CompletedAt = &now
		}
		if err := s.posTxRepo.Create(ctx, posTx); err != nil {
			return err
		}

		if status != enum.POSStatusCompleted {
			return nil
		}
		if workOrder != nil {
			if err := s.workOrderRepo.UpdateStatus(ctx, workOrder.ID, enum.WorkOrderStatusReady); err != nil {
				return err
			}
		}
		return s.customers.RecalculateCounters(ctx, input.CustomerID)
	})
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{}
	result.Transaction, err = s.posTxRepo.GetWithItems(ctx, posTx.ID)
	if err != nil {
		return nil, err
	}

	if status == enum.POSStatusCompleted {
		result.Warning = s.runSideEffects(posTx.ID, customer, input.PrintReceipt)
	}
	return result, nil
}

// PayWashTransactionInput represents the wash transaction settlement input
type PayWashTransactionInput struct {
	UserID         uuid.UUID
	PaymentMethod  enum.PaymentMethod
	AmountPaid     int64
	DiscountAmount int64
	TaxAmount      int64
	PrintReceipt   bool
}

// WashSettlementResult bundles the settlement with its source wash
// transaction.
type WashSettlementResult struct {
	Transaction     *entity.POSTransaction
	WashTransaction *entity.WashTransaction
	Warning         string
}

// PayWashTransaction settles an existing wash transaction through the POS.
// The wash transaction's recorded total is the subtotal (never recomputed)
// and its product lines are copied onto the settlement preserving the
// original snapshots. A wash transaction settles at most once.
func (s *POSService) PayWashTransaction(ctx context.Context, washTxID uuid.UUID, input *PayWashTransactionInput) (*WashSettlementResult, error) {
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "unknown payment method"},
		})
	}
	if input.AmountPaid < 0 || input.DiscountAmount < 0 || input.TaxAmount < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount_paid", Message: "amounts must not be negative"},
		})
	}

	washTx, err := s.washTxRepo.GetWithProducts(ctx, washTxID)
	if err != nil {
		return nil, err
	}
	if washTx == nil {
		return nil, apperror.NewNotFoundError("Wash transaction")
	}

	settled, err := s.posTxRepo.HasCompletedForWashTransaction(ctx, washTxID)
	if err != nil {
		return nil, err
	}
	if settled {
		return nil, apperror.NewConflictError("Wash transaction already settled")
	}

	subtotal := washTx.TotalPrice
	total := subtotal + input.TaxAmount - input.DiscountAmount
	change := input.AmountPaid - total
	if change < 0 {
		change = 0
	}

	lines := make([]entity.POSTransactionItem, 0, len(washTx.Products))
	for _, p := range washTx.Products {
		lines = append(lines, entity.POSTransactionItem{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			Price:     p.Price,
			Subtotal:  p.Subtotal,
		})
	}

	shift, err := s.shiftRepo.GetActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	var shiftID *uuid.UUID
	if shift != nil {
		shiftID = &shift.ID
	}

	var posTx *entity.POSTransaction
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		now := time.Now()
		seq, err := s.posTxRepo.NextSequence(ctx, now)
		if err != nil {
			return err
		}

		posTx = &entity.POSTransaction{
			TransactionNumber: utils.FormatDocNumber("POS", now, seq),
			CustomerID:        washTx.CustomerID,
			CustomerVehicleID: &washTx.CustomerVehicleID,
			WashTransactionID: &washTx.ID,
			ShiftID:           shiftID,
			UserID:            input.UserID,
			Status:            enum.POSStatusCompleted,
			Source:            enum.POSSourceFromWashTransaction,
			PaymentMethod:     input.PaymentMethod,
			Subtotal:          subtotal,
			TaxAmount:         input.TaxAmount,
			DiscountAmount:    input.DiscountAmount,
			TotalAmount:       total,
			AmountPaid:        input.AmountPaid,
			ChangeAmount:      change,
			CompletedAt:       &now,
			Items:             lines,
		}
		if err := s.posTxRepo.Create(ctx, posTx); err != nil {
			return err
		}

		if err := s.washTxRepo.UpdateStatus(ctx, washTx.ID, enum.WashTransactionStatusCompleted); err != nil {
			return err
		}
		return s.customers.RecalculateCounters(ctx, washTx.CustomerID)
	})
	if err != nil {
		return nil, err
	}

	result := &WashSettlementResult{}
	result.Transaction, err = s.posTxRepo.GetWithItems(ctx, posTx.ID)
	if err != nil {
		return nil, err
	}
	result.WashTransaction, err = s.washTxRepo.GetWithProducts(ctx, washTx.ID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, washTx.CustomerID)
	if err == nil && customer != nil {
		result.Warning = s.runSideEffects(posTx.ID, customer, input.PrintReceipt)
	}
	return result, nil
}

// DeletePOSTransaction removes a settlement that never completed. Completed,
// cancelled, and refunded transactions are immutable history.
func (s *POSService) DeletePOSTransaction(ctx context.Context, id uuid.UUID) error {
	posTx, err := s.posTxRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if posTx == nil {
		return apperror.NewNotFoundError("POS transaction")
	}
	if posTx.Status != enum.POSStatusPending {
		return apperror.NewInvalidStateError("Only pending transactions can be deleted")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.posTxRepo.Delete(ctx, id); err != nil {
			return err
		}
		return s.customers.RecalculateCounters(ctx, posTx.CustomerID)
	})
}

// GetPOSTransaction retrieves a settlement with its item lines
func (s *POSService) GetPOSTransaction(ctx context.Context, id uuid.UUID) (*entity.POSTransaction, error) {
	posTx, err := s.posTxRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if posTx == nil {
		return nil, apperror.NewNotFoundError("POS transaction")
	}
	return posTx, nil
}

// ListPOSTransactions lists settlements with filtering
func (s *POSService) ListPOSTransactions(ctx context.Context, params *repository.POSTransactionFilterParams) (*pagination.PaginatedResult[entity.POSTransaction], error) {
	txs, total, err := s.posTxRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txs, pag), nil
}

// DailySalesReport aggregates one calendar day of completed settlements
type DailySalesReport struct {
	Date             string                       `json:"date"`
	TransactionCount int                          `json:"transaction_count"`
	GrossTotal       int64                        `json:"gross_total"`
	ByPaymentMethod  map[enum.PaymentMethod]int64 `json:"by_payment_method"`
	Transactions     []entity.POSTransaction      `json:"transactions"`
}

// GetDailySalesReport builds the sales report for a calendar date. Pure read.
func (s *POSService) GetDailySalesReport(ctx context.Context, date time.Time) (*DailySalesReport, error) {
	txs, err := s.posTxRepo.ListCompletedByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	report := &DailySalesReport{
		Date:             date.Format("2006-01-02"),
		TransactionCount: len(txs),
		ByPaymentMethod:  make(map[enum.PaymentMethod]int64, 4),
		Transactions:     txs,
	}
	for _, method := range enum.PaymentMethods() {
		report.ByPaymentMethod[method] = 0
	}
	for _, tx := range txs {
		report.GrossTotal += tx.TotalAmount
		report.ByPaymentMethod[tx.PaymentMethod] += tx.TotalAmount
	}
	return report, nil
}

// QRISChargeResult is the gateway charge view returned to the client
type QRISChargeResult struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	GatewayRef    string    `json:"gateway_ref"`
	QRString      string    `json:"qr_string"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
}

// CreateQRISCharge opens a gateway charge for a pending QRIS settlement and
// stores the QR payload on the transaction.
func (s *POSService) CreateQRISCharge(ctx context.Context, posTxID uuid.UUID) (*QRISChargeResult, error) {
	posTx, err := s.posTxRepo.GetByID(ctx, posTxID)
	if err != nil {
		return nil, err
	}
	if posTx == nil {
		return nil, apperror.NewNotFoundError("POS transaction")
	}
	if posTx.Status != enum.POSStatusPending {
		return nil, apperror.NewInvalidStateError("Transaction is not awaiting payment")
	}
	if posTx.PaymentMethod != enum.PaymentQRIS {
		return nil, apperror.NewInvalidStateError("Transaction is not a QRIS payment")
	}

	charge, err := s.gateway.CreateQRISCharge(ctx, posTx.TransactionNumber, posTx.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("create QRIS charge: %w", err)
	}

	posTx.GatewayRef = &charge.Reference
	posTx.QRString = &charge.QRString
	if err := s.posTxRepo.Update(ctx, posTx); err != nil {
		return nil, err
	}

	return &QRISChargeResult{
		TransactionID: posTx.ID,
		GatewayRef:    charge.Reference,
		QRString:      charge.QRString,
		Amount:        charge.Amount,
		Status:        string(charge.Status),
	}, nil
}

// QRISStatusResult reports the payment state of a QRIS settlement
type QRISStatusResult struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Status        string    `json:"status"` // pending, completed, failed
}

// CheckQRISStatus polls the gateway and completes the settlement when the
// charge has settled.
func (s *POSService) CheckQRISStatus(ctx context.Context, posTxID uuid.UUID) (*QRISStatusResult, error) {
	posTx, err := s.posTxRepo.GetByID(ctx, posTxID)
	if err != nil {
		return nil, err
	}
	if posTx == nil {
		return nil, apperror.NewNotFoundError("POS transaction")
	}
	if posTx.GatewayRef == nil {
		return nil, apperror.NewInvalidStateError("No QRIS charge exists for this transaction")
	}

	if posTx.Status == enum.POSStatusCompleted {
		return &QRISStatusResult{TransactionID: posTx.ID, Status: "completed"}, nil
	}

	charge, err := s.gateway.CheckStatus(ctx, posTx.TransactionNumber)
	if err != nil {
		return nil, fmt.Errorf("check QRIS status: %w", err)
	}

	switch charge.Status {
	case payment.ChargeStatusSettlement:
		if err := s.completeQRISSettlement(ctx, posTx); err != nil {
			return nil, err
		}
		return &QRISStatusResult{TransactionID: posTx.ID, Status: "completed"}, nil
	case payment.ChargeStatusExpired, payment.ChargeStatusCancelled, payment.ChargeStatusDenied:
		return &QRISStatusResult{TransactionID: posTx.ID, Status: "failed"}, nil
	default:
		return &QRISStatusResult{TransactionID: posTx.ID, Status: "pending"}, nil
	}
}

// completeQRISSettlement flips a pending QRIS settlement to completed once
// the gateway confirms payment, with the same downstream effects as a cash
// completion.
func (s *POSService) completeQRISSettlement(ctx context.Context, posTx *entity.POSTransaction) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		now := time.Now()
		posTx.Status = enum.POSStatusCompleted
		posTx.AmountPaid = posTx.TotalAmount
		posTx.ChangeAmount = 0
		posTx.CompletedAt = &now
		if err := s.posTxRepo.Update(ctx, posTx); err != nil {
			return err
		}

		if posTx.WorkOrderID != nil {
			if err := s.workOrderRepo.UpdateStatus(ctx, *posTx.WorkOrderID, enum.WorkOrderStatusReady); err != nil {
				return err
			}
		}
		if posTx.WashTransactionID != nil {
			if err := s.washTxRepo.UpdateStatus(ctx, *posTx.WashTransactionID, enum.WashTransactionStatusCompleted); err != nil {
				return err
			}
		}
		return s.customers.RecalculateCounters(ctx, posTx.CustomerID)
	})
	if err != nil {
		return err
	}

	if customer, cerr := s.customerRepo.GetByID(ctx, posTx.CustomerID); cerr == nil && customer != nil {
		s.runSideEffects(posTx.ID, customer, false)
	}
	return nil
}

// runSideEffects dispatches the post-settlement push notification off the
// critical path and prints the receipt when requested. The returned warning
// is non-empty only when a requested print failed; nothing here can fail the
// settlement.
func (s *POSService) runSideEffects(posTxID uuid.UUID, customer *entity.Customer, printRequested bool) string {
	go s.notifyCustomer(posTxID, customer)

	if !printRequested {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := s.printers.PrintReceipt(ctx, posTxID); err != nil {
		log.Printf("receipt print failed for %s: %v", posTxID, err)
		return "Transaction completed but receipt printing failed"
	}
	return ""
}

// notifyCustomer sends the payment push notification. An UNREGISTERED
// response clears the stored device token; every other failure is only
// logged.
func (s *POSService) notifyCustomer(posTxID uuid.UUID, customer *entity.Customer) {
	if customer.DeviceToken == nil || *customer.DeviceToken == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := s.notifier.Send(ctx, notify.Message{
		DeviceToken: *customer.DeviceToken,
		Title:       "Payment received",
		Body:        "Thank you! Your payment has been recorded.",
		Data:        map[string]string{"pos_transaction_id": posTxID.String()},
	})
	if err != nil {
		log.Printf("push notification failed for %s: %v", posTxID, err)
		return
	}
	if !result.Success {
		if result.ErrorCode == notify.ErrorCodeUnregistered {
			if cerr := s.customerRepo.ClearDeviceToken(ctx, customer.ID); cerr != nil {
				log.Printf("failed to clear device token for %s: %v", customer.ID, cerr)
			}
		} else {
			log.Printf("push notification rejected for %s: %s", posTxID, result.ErrorCode)
		}
	}
}
