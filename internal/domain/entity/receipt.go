package entity

// ReceiptHeader holds the business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is not a
// database entity; it is composed from a POS transaction at print time.
// Amounts are rupiah.
type Receipt struct {
	Header            ReceiptHeader `json:"header"`
	TransactionNumber string        `json:"transaction_number"`
	Date              string        `json:"date"`
	Cashier           string        `json:"cashier,omitempty"`
	Customer          string        `json:"customer,omitempty"`
	QueueNo           int           `json:"queue_no,omitempty"`
	PaymentMethod     string        `json:"payment_method,omitempty"`
	Items             []ReceiptItem `json:"items"`
	Subtotal          int64         `json:"subtotal"`
	Discount          int64         `json:"discount"`
	Tax               int64         `json:"tax"`
	Total             int64         `json:"total"`
	Paid              int64         `json:"paid"`
	Change            int64         `json:"change"`
}
