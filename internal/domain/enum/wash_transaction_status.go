package enum

// WashTransactionStatus represents the lifecycle state of a wash transaction
type WashTransactionStatus string

const (
	WashTransactionStatusPending    WashTransactionStatus = "pending"
	WashTransactionStatusInProgress WashTransactionStatus = "in_progress"
	WashTransactionStatusCompleted  WashTransactionStatus = "completed"
	WashTransactionStatusCancelled  WashTransactionStatus = "cancelled"
)

var washTransactionTransitions = transitionTable[WashTransactionStatus]{
	WashTransactionStatusPending:    {WashTransactionStatusInProgress, WashTransactionStatusCompleted, WashTransactionStatusCancelled},
	WashTransactionStatusInProgress: {WashTransactionStatusCompleted, WashTransactionStatusCancelled},
}

func (s WashTransactionStatus) String() string { return string(s) }

// Valid reports whether s is one of the known wash transaction statuses.
func (s WashTransactionStatus) Valid() bool {
	switch s {
	case WashTransactionStatusPending, WashTransactionStatusInProgress,
		WashTransactionStatusCompleted, WashTransactionStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the move from s to next is allowed.
// Completed and cancelled are terminal.
func (s WashTransactionStatus) CanTransition(next WashTransactionStatus) bool {
	return washTransactionTransitions.canTransition(s, next)
}

// WashPaymentMethod is the legacy payment method carried on wash transactions
type WashPaymentMethod string

const (
	WashPaymentCash     WashPaymentMethod = "cash"
	WashPaymentCashless WashPaymentMethod = "cashless"
)

// Valid reports whether m is a known wash payment method.
func (m WashPaymentMethod) Valid() bool {
	return m == WashPaymentCash || m == WashPaymentCashless
}
