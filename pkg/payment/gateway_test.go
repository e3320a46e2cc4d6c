package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGatewayChargeLifecycle(t *testing.T) {
	g := NewMockGateway()
	ctx := context.Background()

	charge, err := g.CreateQRISCharge(ctx, "POS-20260830-0001", 50000)
	require.NoError(t, err)
	assert.Equal(t, ChargeStatusPending, charge.Status)
	assert.NotEmpty(t, charge.Reference)
	assert.NotEmpty(t, charge.QRString)

	// Creating the same order again returns the existing charge.
	again, err := g.CreateQRISCharge(ctx, "POS-20260830-0001", 50000)
	require.NoError(t, err)
	assert.Equal(t, charge.Reference, again.Reference)

	require.NoError(t, g.SettleCharge("POS-20260830-0001"))

	status, err := g.CheckStatus(ctx, "POS-20260830-0001")
	require.NoError(t, err)
	assert.Equal(t, ChargeStatusSettlement, status.Status)

	// A settled charge cannot be cancelled or re-settled.
	assert.Error(t, g.Cancel(ctx, "POS-20260830-0001"))
	assert.Error(t, g.SettleCharge("POS-20260830-0001"))
}

func TestMockGatewayRejectsInvalidAmount(t *testing.T) {
	g := NewMockGateway()

	_, err := g.CreateQRISCharge(context.Background(), "POS-1", 0)
	assert.Error(t, err)
	_, err = g.CreateQRISCharge(context.Background(), "POS-2", -100)
	assert.Error(t, err)
}

func TestMockGatewayCancel(t *testing.T) {
	g := NewMockGateway()
	ctx := context.Background()

	_, err := g.CreateQRISCharge(ctx, "POS-3", 10000)
	require.NoError(t, err)
	require.NoError(t, g.Cancel(ctx, "POS-3"))

	status, err := g.CheckStatus(ctx, "POS-3")
	require.NoError(t, err)
	assert.Equal(t, ChargeStatusCancelled, status.Status)
}

func TestMockGatewayAutoSettle(t *testing.T) {
	g := NewMockGateway()
	g.AutoSettle = true

	charge, err := g.CreateQRISCharge(context.Background(), "POS-4", 10000)
	require.NoError(t, err)
	assert.Equal(t, ChargeStatusSettlement, charge.Status)
}

func TestMockGatewayUnknownOrder(t *testing.T) {
	g := NewMockGateway()

	_, err := g.CheckStatus(context.Background(), "missing")
	assert.Error(t, err)
	assert.Error(t, g.Cancel(context.Background(), "missing"))
}
