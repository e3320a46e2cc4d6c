package request

import "github.com/google/uuid"

// WorkOrderServiceLine is a requested service line
type WorkOrderServiceLine struct {
	ServiceItemID uuid.UUID `json:"service_item_id" binding:"required"`
	Quantity      int       `json:"quantity" binding:"required,min=1"`
}

// WorkOrderFdLine is a requested food & drink line
type WorkOrderFdLine struct {
	FdItemID uuid.UUID `json:"fd_item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

// CreateWorkOrderRequest represents a work order creation request
type CreateWorkOrderRequest struct {
	CustomerID        uuid.UUID              `json:"customer_id" binding:"required"`
	CustomerVehicleID uuid.UUID              `json:"customer_vehicle_id" binding:"required"`
	Notes             *string                `json:"notes"`
	Services          []WorkOrderServiceLine `json:"services" binding:"required,min=1,dive"`
	Fds               []WorkOrderFdLine      `json:"fds" binding:"omitempty,dive"`
}

// UpdateWorkOrderStatusRequest represents a status change request
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// WorkOrderFilterRequest represents work order filter parameters
type WorkOrderFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	QueueDate  string `form:"queue_date"` // YYYY-MM-DD
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
