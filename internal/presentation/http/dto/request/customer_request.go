package request

import "github.com/google/uuid"

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Phone       string  `json:"phone" binding:"required,min=8,max=20"`
	Address     *string `json:"address"`
	DeviceToken *string `json:"device_token"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,min=8,max=20"`
	Address     *string `json:"address"`
	DeviceToken *string `json:"device_token"`
}

// AssignMembershipRequest represents a membership assignment request
type AssignMembershipRequest struct {
	MembershipTypeID uuid.UUID `json:"membership_type_id" binding:"required"`
	Status           string    `json:"status" binding:"required"`
}

// CreateVehicleRequest represents a vehicle registration request
type CreateVehicleRequest struct {
	Category      string     `json:"category" binding:"required"`
	Brand         string     `json:"brand" binding:"max=100"`
	Model         string     `json:"model" binding:"max=100"`
	Color         string     `json:"color" binding:"max=50"`
	LicensePlate  string     `json:"license_plate" binding:"required,min=3,max=20"`
	EngineClassID *uuid.UUID `json:"engine_class_id"`
	HelmetTypeID  *uuid.UUID `json:"helmet_type_id"`
	CarSizeID     *uuid.UUID `json:"car_size_id"`
	ApparelTypeID *uuid.UUID `json:"apparel_type_id"`
}

// UpdateVehicleRequest represents a vehicle update request
type UpdateVehicleRequest struct {
	Brand         *string    `json:"brand" binding:"omitempty,max=100"`
	Model         *string    `json:"model" binding:"omitempty,max=100"`
	Color         *string    `json:"color" binding:"omitempty,max=50"`
	LicensePlate  *string    `json:"license_plate" binding:"omitempty,min=3,max=20"`
	EngineClassID *uuid.UUID `json:"engine_class_id"`
	HelmetTypeID  *uuid.UUID `json:"helmet_type_id"`
	CarSizeID     *uuid.UUID `json:"car_size_id"`
	ApparelTypeID *uuid.UUID `json:"apparel_type_id"`
}

// MembershipTypeRequest represents a membership tier create/update request
type MembershipTypeRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
	Price        int64  `json:"price" binding:"min=0"`
	IsPremium    bool   `json:"is_premium"`
}
