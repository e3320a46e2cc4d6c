package request

import "github.com/google/uuid"

// CreateServiceItemRequest represents a service item creation request
type CreateServiceItemRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=255"`
	AppliesTo  string `json:"applies_to" binding:"required"`
	IsMainWash bool   `json:"is_main_wash"`
	IsPremium  bool   `json:"is_premium"`
}

// UpdateServiceItemRequest represents a service item update request
type UpdateServiceItemRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=255"`
	AppliesTo  *string `json:"applies_to"`
	IsMainWash *bool   `json:"is_main_wash"`
	IsPremium  *bool   `json:"is_premium"`
	IsActive   *bool   `json:"is_active"`
}

// CreatePriceMatrixRequest represents a price matrix row creation request
type CreatePriceMatrixRequest struct {
	ServiceItemID uuid.UUID  `json:"service_item_id" binding:"required"`
	EngineClassID *uuid.UUID `json:"engine_class_id"`
	HelmetTypeID  *uuid.UUID `json:"helmet_type_id"`
	CarSizeID     *uuid.UUID `json:"car_size_id"`
	ApparelTypeID *uuid.UUID `json:"apparel_type_id"`
	Price         int64      `json:"price" binding:"min=0"`
}

// UpdatePriceMatrixRequest represents a price matrix row update request
type UpdatePriceMatrixRequest struct {
	Price int64 `json:"price" binding:"min=0"`
}

// ResolvePriceRequest represents a price resolution query
type ResolvePriceRequest struct {
	ServiceItemID uuid.UUID  `json:"service_item_id" binding:"required"`
	EngineClassID *uuid.UUID `json:"engine_class_id"`
	HelmetTypeID  *uuid.UUID `json:"helmet_type_id"`
	CarSizeID     *uuid.UUID `json:"car_size_id"`
	ApparelTypeID *uuid.UUID `json:"apparel_type_id"`
}

// FdItemRequest represents an F&D item create request
type FdItemRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=255"`
	Price int64  `json:"price" binding:"min=0"`
}

// UpdateFdItemRequest represents an F&D item update request
type UpdateFdItemRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Price    *int64  `json:"price" binding:"omitempty,min=0"`
	IsActive *bool   `json:"is_active"`
}
