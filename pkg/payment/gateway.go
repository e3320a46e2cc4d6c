package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ChargeStatus is the lifecycle state of a gateway charge.
type ChargeStatus string

const (
	ChargeStatusPending    ChargeStatus = "pending"
	ChargeStatusSettlement ChargeStatus = "settlement"
	ChargeStatusExpired    ChargeStatus = "expire"
	ChargeStatusCancelled  ChargeStatus = "cancel"
	ChargeStatusDenied     ChargeStatus = "deny"
)

// Charge is the gateway's view of a QRIS payment.
type Charge struct {
	OrderID   string
	Reference string
	QRString  string
	Amount    int64
	Status    ChargeStatus
	ExpiresAt time.Time
}

// Gateway issues and tracks QRIS charges. CreateQRISCharge returns a QR string
// the customer scans; CheckStatus polls until the charge settles or expires.
type Gateway interface {
	CreateQRISCharge(ctx context.Context, orderID string, amount int64) (*Charge, error)
	CheckStatus(ctx context.Context, orderID string) (*Charge, error)
	Cancel(ctx context.Context, orderID string) error
}

// MockGateway simulates a QRIS acquirer in memory. Charges settle when
// SettleCharge is called (or immediately when AutoSettle is set), which keeps
// development and tests independent of the real acquirer.
type MockGateway struct {
	mu         sync.Mutex
	charges    map[string]*Charge
	AutoSettle bool
	Expiry     time.Duration
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		charges: make(map[string]*Charge),
		Expiry:  15 * time.Minute,
	}
}

func (g *MockGateway) CreateQRISCharge(ctx context.Context, orderID string, amount int64) (*Charge, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid charge amount: %d", amount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.charges[orderID]; ok {
		return copyCharge(existing), nil
	}

	status := ChargeStatusPending
	if g.AutoSettle {
		status = ChargeStatusSettlement
	}
	charge := &Charge{
		OrderID:   orderID,
		Reference: "MOCK-" + uuid.NewString(),
		QRString:  fmt.Sprintf("00020101021226mock.qris/%s/%d", orderID, amount),
		Amount:    amount,
		Status:    status,
		ExpiresAt: time.Now().Add(g.Expiry),
	}
	g.charges[orderID] = charge
	return copyCharge(charge), nil
}

func (g *MockGateway) CheckStatus(ctx context.Context, orderID string) (*Charge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	charge, ok := g.charges[orderID]
	if !ok {
		return nil, fmt.Errorf("charge not found: %s", orderID)
	}
	if charge.Status == ChargeStatusPending && time.Now().After(charge.ExpiresAt) {
		charge.Status = ChargeStatusExpired
	}
	return copyCharge(charge), nil
}

func (g *MockGateway) Cancel(ctx context.Context, orderID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	charge, ok := g.charges[orderID]
	if !ok {
		return fmt.Errorf("charge not found: %s", orderID)
	}
	if charge.Status == ChargeStatusSettlement {
		return fmt.Errorf("charge already settled: %s", orderID)
	}
	charge.Status = ChargeStatusCancelled
	return nil
}

// SettleCharge marks a pending charge as paid, simulating the customer
// completing the scan.
func (g *MockGateway) SettleCharge(orderID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	charge, ok := g.charges[orderID]
	if !ok {
		return fmt.Errorf("charge not found: %s", orderID)
	}
	if charge.Status != ChargeStatusPending {
		return fmt.Errorf("charge not pending: %s", orderID)
	}
	charge.Status = ChargeStatusSettlement
	return nil
}

func copyCharge(c *Charge) *Charge {
	cp := *c
	return &cp
}
