package request

import "github.com/google/uuid"

// POSItemLine is a product line at checkout
type POSItemLine struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest represents a direct checkout (or work order settlement)
// request
type CheckoutRequest struct {
	CustomerID        uuid.UUID     `json:"customer_id" binding:"required"`
	CustomerVehicleID *uuid.UUID    `json:"customer_vehicle_id"`
	WorkOrderID       *uuid.UUID    `json:"work_order_id"`
	PaymentMethod     string        `json:"payment_method" binding:"required"`
	AmountPaid        int64         `json:"amount_paid" binding:"min=0"`
	DiscountAmount    int64         `json:"discount_amount" binding:"min=0"`
	TaxAmount         int64         `json:"tax_amount" binding:"min=0"`
	Items             []POSItemLine `json:"items" binding:"omitempty,dive"`
	PrintReceipt      bool          `json:"print_receipt"`
}

// PayWashTransactionRequest represents a wash transaction settlement request
type PayWashTransactionRequest struct {
	PaymentMethod  string `json:"payment_method" binding:"required"`
	AmountPaid     int64  `json:"amount_paid" binding:"min=0"`
	DiscountAmount int64  `json:"discount_amount" binding:"min=0"`
	TaxAmount      int64  `json:"tax_amount" binding:"min=0"`
	PrintReceipt   bool   `json:"print_receipt"`
}

// POSFilterRequest represents POS transaction filter parameters
type POSFilterRequest struct {
	Search        string `form:"search"`
	Status        string `form:"status"`
	PaymentMethod string `form:"payment_method"`
	CustomerID    string `form:"customer_id"`
	ShiftID       string `form:"shift_id"`
	StartDate     string `form:"start_date"` // YYYY-MM-DD
	EndDate       string `form:"end_date"`   // YYYY-MM-DD
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
