package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// CustomerVehicle represents a registered vehicle (or helmet/garment item).
// License plates are unique across the whole registry, not per customer.
type CustomerVehicle struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_id"`
	Category      enum.VehicleCategory `gorm:"size:20;not null" json:"category"`
	Brand         string               `gorm:"size:100" json:"brand"`
	Model         string               `gorm:"size:100" json:"model"`
	Color         string               `gorm:"size:50" json:"color"`
	LicensePlate  string               `gorm:"size:20;uniqueIndex;not null" json:"license_plate"`
	EngineClassID *uuid.UUID           `gorm:"type:uuid" json:"engine_class_id,omitempty"`
	HelmetTypeID  *uuid.UUID           `gorm:"type:uuid" json:"helmet_type_id,omitempty"`
	CarSizeID     *uuid.UUID           `gorm:"type:uuid" json:"car_size_id,omitempty"`
	ApparelTypeID *uuid.UUID           `gorm:"type:uuid" json:"apparel_type_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Customer    Customer     `gorm:"foreignKey:CustomerID" json:"-"`
	EngineClass *EngineClass `gorm:"foreignKey:EngineClassID" json:"engine_class,omitempty"`
	HelmetType  *HelmetType  `gorm:"foreignKey:HelmetTypeID" json:"helmet_type,omitempty"`
	CarSize     *CarSize     `gorm:"foreignKey:CarSizeID" json:"car_size,omitempty"`
	ApparelType *ApparelType `gorm:"foreignKey:ApparelTypeID" json:"apparel_type,omitempty"`
}

// BeforeCreate generates a UUID before creating a new vehicle
func (v *CustomerVehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CustomerVehicle model
func (CustomerVehicle) TableName() string {
	return "customer_vehicles"
}
