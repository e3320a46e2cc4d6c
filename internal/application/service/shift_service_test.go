package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/pkg/apperror"
	"github.com/kilatwash/washpos-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShiftFixture(t *testing.T) (*memStore, *ShiftService) {
	t.Helper()
	store := newMemStore()
	svc := NewShiftService(&fakeShiftRepo{store: store}, &fakeWashTxRepo{store: store}, fakeTxManager{})
	return store, svc
}

func seedShiftWashTx(store *memStore, shiftID uuid.UUID, status enum.WashTransactionStatus, method enum.WashPaymentMethod, price int64) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.addWashTx(&entity.WashTransaction{
		CustomerID:        uuid.New(),
		CustomerVehicleID: uuid.New(),
		ShiftID:           &shiftID,
		Status:            status,
		PaymentMethod:     method,
		TotalPrice:        price,
	})
}

func TestStartShift(t *testing.T) {
	_, svc := newShiftFixture(t)
	userID := uuid.New()

	shift, err := svc.StartShift(context.Background(), &StartShiftInput{
		UserID:       userID,
		InitialCash:  200000,
		ReceivedFrom: "Owner",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.ShiftStatusActive, shift.Status)
	assert.Equal(t, int64(200000), shift.InitialCash)

	// A second active shift for the same user is a conflict.
	_, err = svc.StartShift(context.Background(), &StartShiftInput{UserID: userID})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	// Another user is unaffected.
	_, err = svc.StartShift(context.Background(), &StartShiftInput{UserID: uuid.New()})
	require.NoError(t, err)
}

func TestStartShiftRejectsNegativeFloat(t *testing.T) {
	_, svc := newShiftFixture(t)

	_, err := svc.StartShift(context.Background(), &StartShiftInput{
		UserID:      uuid.New(),
		InitialCash: -1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCloseShift(t *testing.T) {
	store, svc := newShiftFixture(t)
	ctx := context.Background()

	shift, err := svc.StartShift(ctx, &StartShiftInput{UserID: uuid.New(), InitialCash: 100000})
	require.NoError(t, err)

	// Only completed wash transactions count toward total_sales.
	seedShiftWashTx(store, shift.ID, enum.WashTransactionStatusCompleted, enum.WashPaymentCash, 50000)
	seedShiftWashTx(store, shift.ID, enum.WashTransactionStatusCompleted, enum.WashPaymentCashless, 30000)
	seedShiftWashTx(store, shift.ID, enum.WashTransactionStatusPending, enum.WashPaymentCash, 99999)

	summary, err := svc.CloseShift(ctx, shift.ID, 175000)
	require.NoError(t, err)

	assert.Equal(t, int64(80000), summary.Shift.TotalSales)
	assert.Equal(t, int64(180000), summary.ExpectedCash)
	assert.Equal(t, int64(175000), summary.FinalCash)
	assert.Equal(t, int64(-5000), summary.Difference)
	assert.Equal(t, enum.ShiftStatusClosed, summary.Shift.Status)
	require.NotNil(t, summary.Shift.EndTime)

	// Closing is terminal.
	_, err = svc.CloseShift(ctx, shift.ID, 175000)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCloseActiveShift(t *testing.T) {
	_, svc := newShiftFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	// No active shift to close.
	_, err := svc.CloseActiveShift(ctx, userID, 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	shift, err := svc.StartShift(ctx, &StartShiftInput{UserID: userID, InitialCash: 10000})
	require.NoError(t, err)

	summary, err := svc.CloseActiveShift(ctx, userID, 10000)
	require.NoError(t, err)
	assert.Equal(t, shift.ID, summary.Shift.ID)
	assert.Equal(t, enum.ShiftStatusClosed, summary.Shift.Status)
}

func TestCancelShift(t *testing.T) {
	_, svc := newShiftFixture(t)
	ctx := context.Background()

	shift, err := svc.StartShift(ctx, &StartShiftInput{UserID: uuid.New()})
	require.NoError(t, err)

	cancelled, err := svc.CancelShift(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.ShiftStatusCanceled, cancelled.Status)

	_, err = svc.CancelShift(ctx, shift.ID)
	require.Error(t, err)
}

func TestCurrentStats(t *testing.T) {
	store, svc := newShiftFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.CurrentStats(ctx, userID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	shift, err := svc.StartShift(ctx, &StartShiftInput{UserID: userID, InitialCash: 50000})
	require.NoError(t, err)

	seedShiftWashTx(store, shift.ID, enum.WashTransactionStatusCompleted, enum.WashPaymentCash, 40000)
	seedShiftWashTx(store, shift.ID, enum.WashTransactionStatusInProgress, enum.WashPaymentCash, 25000)

	stats, err := svc.CurrentStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(40000), stats.SalesSoFar)
	assert.Equal(t, int64(2), stats.TransactionCount)
	assert.Equal(t, int64(90000), stats.ExpectedCash)
}

func TestShiftTransactions(t *testing.T) {
	store, svc := newShiftFixture(t)
	ctx := context.Background()

	shift, err := svc.StartShift(ctx, &StartShiftInput{UserID: uuid.New()})
	require.NoError(t, err)

	seedShiftWashTx(store, shift.ID, enum.WashTransactionStatusCompleted, enum.WashPaymentCash, 50000)
	seedShiftWashTx(store, shift.ID, enum.WashTransactionStatusCompleted, enum.WashPaymentCashless, 35000)

	result, err := svc.ShiftTransactions(ctx, shift.ID, pagination.DefaultPagination())
	require.NoError(t, err)

	assert.Len(t, result.Transactions.Items, 2)
	assert.Equal(t, int64(50000), result.ShiftTotals.Cash)
	assert.Equal(t, int64(35000), result.ShiftTotals.Debit)
	assert.Equal(t, int64(85000), result.ShiftTotals.Total)
	assert.Equal(t, result.ShiftTotals.Total, result.PageTotals.Total)
}

func TestListShiftsFiltersByUser(t *testing.T) {
	_, svc := newShiftFixture(t)
	ctx := context.Background()
	userA := uuid.New()

	_, err := svc.StartShift(ctx, &StartShiftInput{UserID: userA})
	require.NoError(t, err)
	_, err = svc.StartShift(ctx, &StartShiftInput{UserID: uuid.New()})
	require.NoError(t, err)

	all, err := svc.ListShifts(ctx, uuid.Nil, pagination.DefaultPagination())
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	mine, err := svc.ListShifts(ctx, userA, pagination.DefaultPagination())
	require.NoError(t, err)
	assert.Len(t, mine.Items, 1)
}
