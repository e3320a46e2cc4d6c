package request

import "github.com/google/uuid"

// WashProductLine is a product line on a wash transaction
type WashProductLine struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateWashTransactionRequest represents a wash transaction creation request
type CreateWashTransactionRequest struct {
	CustomerID        uuid.UUID         `json:"customer_id" binding:"required"`
	CustomerVehicleID uuid.UUID         `json:"customer_vehicle_id" binding:"required"`
	PaymentMethod     string            `json:"payment_method" binding:"required"`
	Products          []WashProductLine `json:"products" binding:"omitempty,dive"`
}

// UpdateWashStatusRequest represents a wash transaction status change request
type UpdateWashStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// WashTransactionFilterRequest represents wash transaction filter parameters
type WashTransactionFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"` // YYYY-MM-DD
	EndDate    string `form:"end_date"`   // YYYY-MM-DD
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
