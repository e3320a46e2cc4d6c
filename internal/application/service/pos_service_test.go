package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/config"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/pkg/apperror"
	"github.com/kilatwash/washpos-api/pkg/notify"
	"github.com/kilatwash/washpos-api/pkg/payment"
	"github.com/kilatwash/washpos-api/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posFixture struct {
	store   *memStore
	service *POSService
	gateway *payment.MockGateway
}

func newPOSFixture(t *testing.T, p printer.Printer) *posFixture {
	t.Helper()

	store := newMemStore()
	posTxRepo := &fakePOSTxRepo{store: store}
	washTxRepo := &fakeWashTxRepo{store: store}
	workOrderRepo := &fakeWorkOrderRepo{store: store}
	productRepo := &fakeProductRepo{store: store}
	customerRepo := &fakeCustomerRepo{store: store}
	shiftRepo := &fakeShiftRepo{store: store}

	customers := NewCustomerService(customerRepo, nil, nil, washTxRepo, posTxRepo)
	printers := NewPrinterService(p, posTxRepo, &config.PrinterConfig{Type: "null"}, config.StoreConfig{Name: "Test Store"})
	gateway := payment.NewMockGateway()

	svc := NewPOSService(
		posTxRepo, washTxRepo, workOrderRepo, productRepo, customerRepo, shiftRepo,
		customers, printers, notify.NewLogSender(), gateway, fakeTxManager{},
	)
	return &posFixture{store: store, service: svc, gateway: gateway}
}

func (f *posFixture) seedCustomer() *entity.Customer {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.addCustomer(&entity.Customer{Name: "Budi", Phone: "0812000001"})
}

func (f *posFixture) seedProduct(name string, price int64) *entity.Product {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.addProduct(&entity.Product{Name: name, Price: price, IsActive: true})
}

func TestCheckoutDirectSale(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	coffee := f.seedProduct("Coffee", 15000)
	wax := f.seedProduct("Wax", 50000)
	userID := uuid.New()

	result, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        userID,
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    100000,
		Items: []POSItemInput{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: wax.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Transaction)

	tx := result.Transaction
	assert.Equal(t, enum.POSStatusCompleted, tx.Status)
	assert.Equal(t, enum.POSSourceDirectSale, tx.Source)
	assert.Equal(t, int64(80000), tx.Subtotal)
	assert.Equal(t, int64(80000), tx.TotalAmount)
	assert.Equal(t, int64(20000), tx.ChangeAmount)
	assert.NotNil(t, tx.CompletedAt)
	assert.Regexp(t, `^POS-\d{8}-0001$`, tx.TransactionNumber)
	require.Len(t, tx.Items, 2)
	assert.Equal(t, int64(15000), tx.Items[0].Price)
	assert.Equal(t, int64(30000), tx.Items[0].Subtotal)

	// Counters are recomputed from the transaction tables inside the same
	// transaction.
	assert.Equal(t, int64(1), f.store.customers[customer.ID].TotalTransactions)
}

func TestCheckoutDiscountAndTax(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Shampoo", 40000)

	result, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:     customer.ID,
		UserID:         uuid.New(),
		PaymentMethod:  enum.PaymentCash,
		AmountPaid:     50000,
		DiscountAmount: 5000,
		TaxAmount:      4000,
		Items:          []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	tx := result.Transaction
	assert.Equal(t, int64(40000), tx.Subtotal)
	assert.Equal(t, int64(39000), tx.TotalAmount)
	assert.Equal(t, int64(11000), tx.ChangeAmount)
}

func TestCheckoutUnderpaymentSucceedsWithZeroChange(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Detailing", 150000)

	result, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    100000,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	tx := result.Transaction
	assert.Equal(t, enum.POSStatusCompleted, tx.Status)
	assert.Equal(t, int64(150000), tx.TotalAmount)
	assert.Equal(t, int64(100000), tx.AmountPaid)
	assert.Equal(t, int64(0), tx.ChangeAmount)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()

	_, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    10000,
		Items:         []POSItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.NotEmpty(t, appErr.Errors)

	// Nothing was written.
	assert.Empty(t, f.store.posTxs)
}

func TestCheckoutRequiresItemsOrWorkOrder(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()

	_, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.NotEmpty(t, appErr.Errors)
}

func TestCheckoutAttachesActiveShift(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Soda", 8000)
	userID := uuid.New()

	f.store.mu.Lock()
	shift := f.store.addShift(&entity.Shift{UserID: userID, Status: enum.ShiftStatusActive, StartTime: time.Now()})
	f.store.mu.Unlock()

	result, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        userID,
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    8000,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Transaction.ShiftID)
	assert.Equal(t, shift.ID, *result.Transaction.ShiftID)
}

func TestCheckoutWorkOrderSettlement(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	snack := f.seedProduct("Snack", 10000)

	f.store.mu.Lock()
	workOrder := f.store.addWorkOrder(&entity.WorkOrder{
		Code:       "WO-20260830-0001",
		CustomerID: customer.ID,
		Status:     enum.WorkOrderStatusInspection,
		Services: []entity.WorkOrderService{
			{Quantity: 1, UnitPrice: 75000, Subtotal: 75000},
		},
		Fds: []entity.WorkOrderFd{
			{Quantity: 2, UnitPrice: 12000, Subtotal: 24000},
		},
	})
	f.store.mu.Unlock()

	result, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		WorkOrderID:   &workOrder.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    120000,
		Items:         []POSItemInput{{ProductID: snack.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	tx := result.Transaction
	assert.Equal(t, enum.POSSourceFromWorkOrder, tx.Source)
	assert.Equal(t, int64(109000), tx.Subtotal)
	assert.Equal(t, int64(11000), tx.ChangeAmount)

	// The settled work order moves to ready for pickup.
	assert.Equal(t, enum.WorkOrderStatusReady, f.store.workOrders[workOrder.ID].Status)

	// A second settlement of the same work order is a conflict.
	_, err = f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		WorkOrderID:   &workOrder.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    120000,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestCheckoutQRISWithoutPaymentStaysPending(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Wax", 50000)

	result, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentQRIS,
		AmountPaid:    0,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	tx := result.Transaction
	assert.Equal(t, enum.POSStatusPending, tx.Status)
	assert.Nil(t, tx.CompletedAt)
	assert.Empty(t, result.Warning)

	// Pending settlements do not count toward customer totals.
	assert.Equal(t, int64(0), f.store.customers[customer.ID].TotalTransactions)
}

func TestCheckoutPrintFailureReturnsWarning(t *testing.T) {
	f := newPOSFixture(t, failingPrinter{})
	customer := f.seedCustomer()
	product := f.seedProduct("Coffee", 15000)

	result, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    15000,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
		PrintReceipt:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.POSStatusCompleted, result.Transaction.Status)
	assert.Equal(t, "Transaction completed but receipt printing failed", result.Warning)
}

func TestCheckoutRejectsForeignWorkOrder(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	owner := f.seedCustomer()
	other := f.seedCustomer()

	f.store.mu.Lock()
	workOrder := f.store.addWorkOrder(&entity.WorkOrder{
		Code:       "WO-20260830-0002",
		CustomerID: owner.ID,
		Status:     enum.WorkOrderStatusInspection,
		Services: []entity.WorkOrderService{
			{Quantity: 1, UnitPrice: 50000, Subtotal: 50000},
		},
	})
	f.store.mu.Unlock()

	// The work order belongs to another customer; the settlement is refused
	// and nothing is written.
	_, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    other.ID,
		WorkOrderID:   &workOrder.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    50000,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.NotEmpty(t, appErr.Errors)

	f.store.mu.Lock()
	assert.Empty(t, f.store.posTxs)
	assert.Equal(t, enum.WorkOrderStatusInspection, f.store.workOrders[workOrder.ID].Status)
	f.store.mu.Unlock()
}

func TestPayWashTransaction(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Motor Wash", 25000)
	vehicleID := uuid.New()

	f.store.mu.Lock()
	washTx := f.store.addWashTx(&entity.WashTransaction{
		TransactionNumber: "WT-20260830-0001",
		CustomerID:        customer.ID,
		CustomerVehicleID: vehicleID,
		Status:            enum.WashTransactionStatusInProgress,
		PaymentMethod:     enum.WashPaymentCash,
		TotalPrice:        25000,
		Products: []entity.WashTransactionProduct{
			{ProductID: product.ID, Quantity: 1, Price: 25000, Subtotal: 25000},
		},
	})
	f.store.mu.Unlock()

	result, err := f.service.PayWashTransaction(context.Background(), washTx.ID, &PayWashTransactionInput{
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    30000,
	})
	require.NoError(t, err)

	tx := result.Transaction
	assert.Equal(t, enum.POSSourceFromWashTransaction, tx.Source)
	assert.Equal(t, enum.POSStatusCompleted, tx.Status)
	assert.Equal(t, int64(25000), tx.Subtotal)
	assert.Equal(t, int64(5000), tx.ChangeAmount)
	require.NotNil(t, tx.WashTransactionID)
	assert.Equal(t, washTx.ID, *tx.WashTransactionID)

	// Product lines are copied with their original snapshots.
	require.Len(t, tx.Items, 1)
	assert.Equal(t, product.ID, tx.Items[0].ProductID)
	assert.Equal(t, int64(25000), tx.Items[0].Price)

	assert.Equal(t, enum.WashTransactionStatusCompleted, result.WashTransaction.Status)

	// Counters recompute from both transaction tables, so the completed wash
	// and its settlement each count: one physical sale advances the total
	// by two.
	f.store.mu.Lock()
	assert.Equal(t, int64(2), f.store.customers[customer.ID].TotalTransactions)
	f.store.mu.Unlock()

	// Settling twice is a conflict.
	_, err = f.service.PayWashTransaction(context.Background(), washTx.ID, &PayWashTransactionInput{
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    30000,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestDeletePOSTransactionPendingOnly(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Wax", 50000)
	ctx := context.Background()

	pending, err := f.service.Checkout(ctx, &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentQRIS,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	completed, err := f.service.Checkout(ctx, &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    50000,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeletePOSTransaction(ctx, pending.Transaction.ID))
	_, err = f.service.GetPOSTransaction(ctx, pending.Transaction.ID)
	require.Error(t, err)

	err = f.service.DeletePOSTransaction(ctx, completed.Transaction.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestQRISChargeLifecycle(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Premium Wash", 100000)
	ctx := context.Background()

	result, err := f.service.Checkout(ctx, &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentQRIS,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	txID := result.Transaction.ID

	charge, err := f.service.CreateQRISCharge(ctx, txID)
	require.NoError(t, err)
	assert.NotEmpty(t, charge.QRString)
	assert.Equal(t, int64(100000), charge.Amount)

	// Still pending until the customer completes the scan.
	status, err := f.service.CheckQRISStatus(ctx, txID)
	require.NoError(t, err)
	assert.Equal(t, "pending", status.Status)

	require.NoError(t, f.gateway.SettleCharge(result.Transaction.TransactionNumber))

	status, err = f.service.CheckQRISStatus(ctx, txID)
	require.NoError(t, err)
	assert.Equal(t, "completed", status.Status)

	tx, err := f.service.GetPOSTransaction(ctx, txID)
	require.NoError(t, err)
	assert.Equal(t, enum.POSStatusCompleted, tx.Status)
	assert.Equal(t, int64(100000), tx.AmountPaid)
	assert.Equal(t, int64(0), tx.ChangeAmount)
	require.NotNil(t, tx.CompletedAt)

	assert.Equal(t, int64(1), f.store.customers[customer.ID].TotalTransactions)

	// Re-checking a completed settlement short-circuits.
	status, err = f.service.CheckQRISStatus(ctx, txID)
	require.NoError(t, err)
	assert.Equal(t, "completed", status.Status)
}

func TestCreateQRISChargeRejectsNonPending(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Wax", 50000)

	result, err := f.service.Checkout(context.Background(), &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    50000,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.service.CreateQRISCharge(context.Background(), result.Transaction.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestDailySalesReport(t *testing.T) {
	f := newPOSFixture(t, printer.NewNullPrinter())
	customer := f.seedCustomer()
	product := f.seedProduct("Coffee", 15000)
	ctx := context.Background()

	_, err := f.service.Checkout(ctx, &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    15000,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.service.Checkout(ctx, &CheckoutInput{
		CustomerID:    customer.ID,
		UserID:        uuid.New(),
		PaymentMethod: enum.PaymentTransfer,
		AmountPaid:    30000,
		Items:         []POSItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	report, err := f.service.GetDailySalesReport(ctx, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 2, report.TransactionCount)
	assert.Equal(t, int64(45000), report.GrossTotal)
	assert.Equal(t, int64(15000), report.ByPaymentMethod[enum.PaymentCash])
	assert.Equal(t, int64(30000), report.ByPaymentMethod[enum.PaymentTransfer])

	// Every accepted method appears, even with no sales.
	assert.Contains(t, report.ByPaymentMethod, enum.PaymentQRIS)
	assert.Contains(t, report.ByPaymentMethod, enum.PaymentEWallet)
}
