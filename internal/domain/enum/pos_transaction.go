package enum

// POSTransactionStatus represents the settlement state of a POS transaction
type POSTransactionStatus string

const (
	POSStatusPending   POSTransactionStatus = "pending"
	POSStatusCompleted POSTransactionStatus = "completed"
	POSStatusCancelled POSTransactionStatus = "cancelled"
	POSStatusRefunded  POSTransactionStatus = "refunded"
)

var posTransitions = transitionTable[POSTransactionStatus]{
	POSStatusPending:   {POSStatusCompleted, POSStatusCancelled},
	POSStatusCompleted: {POSStatusRefunded},
}

func (s POSTransactionStatus) String() string { return string(s) }

// CanTransition reports whether the move from s to next is allowed.
func (s POSTransactionStatus) CanTransition(next POSTransactionStatus) bool {
	return posTransitions.canTransition(s, next)
}

// PaymentMethod is the payment method accepted at POS checkout
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentQRIS     PaymentMethod = "qris"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentEWallet  PaymentMethod = "e_wallet"
)

// Valid reports whether m is a known POS payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentQRIS, PaymentTransfer, PaymentEWallet:
		return true
	}
	return false
}

// PaymentMethods lists every accepted POS payment method, in report order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentQRIS, PaymentTransfer, PaymentEWallet}
}

// POSSource tags where a POS transaction originated. It replaces the legacy
// split between a narrow Payment table and the settlement record proper:
// one settlement entity, tagged by source.
type POSSource string

const (
	POSSourceDirectSale          POSSource = "direct_sale"
	POSSourceFromWashTransaction POSSource = "from_wash_transaction"
	POSSourceFromWorkOrder       POSSource = "from_work_order"
)
