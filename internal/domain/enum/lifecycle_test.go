package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkOrderTransitions(t *testing.T) {
	// Happy path through the wash pipeline.
	assert.True(t, WorkOrderStatusNew.CanTransition(WorkOrderStatusQueued))
	assert.True(t, WorkOrderStatusQueued.CanTransition(WorkOrderStatusWashing))
	assert.True(t, WorkOrderStatusWashing.CanTransition(WorkOrderStatusDrying))
	assert.True(t, WorkOrderStatusDrying.CanTransition(WorkOrderStatusReady))
	assert.True(t, WorkOrderStatusReady.CanTransition(WorkOrderStatusPaid))
	assert.True(t, WorkOrderStatusPaid.CanTransition(WorkOrderStatusDone))

	// Inspection can send a vehicle back to washing.
	assert.True(t, WorkOrderStatusInspection.CanTransition(WorkOrderStatusWashing))

	// On hold pauses and resumes.
	assert.True(t, WorkOrderStatusQueued.CanTransition(WorkOrderStatusOnHold))
	assert.True(t, WorkOrderStatusOnHold.CanTransition(WorkOrderStatusQueued))

	// No skipping stages.
	assert.False(t, WorkOrderStatusNew.CanTransition(WorkOrderStatusReady))
	assert.False(t, WorkOrderStatusQueued.CanTransition(WorkOrderStatusPaid))

	// Done and cancelled are terminal.
	assert.True(t, WorkOrderStatusDone.IsTerminal())
	assert.True(t, WorkOrderStatusCancelled.IsTerminal())
	assert.False(t, WorkOrderStatusDone.CanTransition(WorkOrderStatusNew))
}

func TestWorkOrderStatusValid(t *testing.T) {
	assert.True(t, WorkOrderStatusWashing.Valid())
	assert.False(t, WorkOrderStatus("scrubbing").Valid())
}

func TestShiftTransitions(t *testing.T) {
	assert.True(t, ShiftStatusActive.CanTransition(ShiftStatusClosed))
	assert.True(t, ShiftStatusActive.CanTransition(ShiftStatusCanceled))

	// A shift never reopens.
	assert.False(t, ShiftStatusClosed.CanTransition(ShiftStatusActive))
	assert.False(t, ShiftStatusCanceled.CanTransition(ShiftStatusActive))
	assert.False(t, ShiftStatusClosed.CanTransition(ShiftStatusCanceled))
}

func TestWashTransactionTransitions(t *testing.T) {
	assert.True(t, WashTransactionStatusPending.CanTransition(WashTransactionStatusInProgress))
	assert.True(t, WashTransactionStatusPending.CanTransition(WashTransactionStatusCompleted))
	assert.True(t, WashTransactionStatusInProgress.CanTransition(WashTransactionStatusCancelled))

	assert.False(t, WashTransactionStatusCompleted.CanTransition(WashTransactionStatusPending))
	assert.False(t, WashTransactionStatusCancelled.CanTransition(WashTransactionStatusInProgress))
}

func TestPOSTransactionTransitions(t *testing.T) {
	assert.True(t, POSStatusPending.CanTransition(POSStatusCompleted))
	assert.True(t, POSStatusPending.CanTransition(POSStatusCancelled))
	assert.True(t, POSStatusCompleted.CanTransition(POSStatusRefunded))

	assert.False(t, POSStatusCompleted.CanTransition(POSStatusPending))
	assert.False(t, POSStatusRefunded.CanTransition(POSStatusCompleted))
	assert.False(t, POSStatusCancelled.CanTransition(POSStatusCompleted))
}

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range PaymentMethods() {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, PaymentMethod("check").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestWashPaymentMethodValid(t *testing.T) {
	assert.True(t, WashPaymentCash.Valid())
	assert.True(t, WashPaymentCashless.Valid())
	assert.False(t, WashPaymentMethod("qris").Valid())
}
