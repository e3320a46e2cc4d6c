package payment

import (
	"context"
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

// MidtransGateway issues QRIS charges through the Midtrans Core API.
type MidtransGateway struct {
	client coreapi.Client
}

func NewMidtransGateway(serverKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &MidtransGateway{}
	g.client.New(serverKey, env)
	return g
}

func (g *MidtransGateway) CreateQRISCharge(ctx context.Context, orderID string, amount int64) (*Charge, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid charge amount: %d", amount)
	}

	req := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		Qris: &coreapi.QrisDetails{Acquirer: "gopay"},
	}

	resp, err := g.client.ChargeTransaction(req)
	if err != nil {
		return nil, fmt.Errorf("midtrans charge failed: %w", err)
	}

	charge := &Charge{
		OrderID:   orderID,
		Reference: resp.TransactionID,
		QRString:  resp.QRString,
		Amount:    amount,
		Status:    ChargeStatus(resp.TransactionStatus),
	}
	if resp.ExpiryTime != "" {
		if t, perr := time.Parse("2006-01-02 15:04:05", resp.ExpiryTime); perr == nil {
			charge.ExpiresAt = t
		}
	}
	return charge, nil
}

func (g *MidtransGateway) CheckStatus(ctx context.Context, orderID string) (*Charge, error) {
	resp, err := g.client.CheckTransaction(orderID)
	if err != nil {
		return nil, fmt.Errorf("midtrans status check failed: %w", err)
	}
	amount, _ := parseGross(resp.GrossAmount)
	return &Charge{
		OrderID:   orderID,
		Reference: resp.TransactionID,
		Amount:    amount,
		Status:    ChargeStatus(resp.TransactionStatus),
	}, nil
}

func (g *MidtransGateway) Cancel(ctx context.Context, orderID string) error {
	if _, err := g.client.CancelTransaction(orderID); err != nil {
		return fmt.Errorf("midtrans cancel failed: %w", err)
	}
	return nil
}

// parseGross converts Midtrans' "150000.00" gross amount to whole rupiah.
func parseGross(s string) (int64, error) {
	var rupiah int64
	var fraction int
	if _, err := fmt.Sscanf(s, "%d.%d", &rupiah, &fraction); err != nil {
		if _, err2 := fmt.Sscanf(s, "%d", &rupiah); err2 != nil {
			return 0, err
		}
	}
	return rupiah, nil
}
