package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// WashTransaction is the legacy per-vehicle unit-of-service record. It is
// settled through the POS path; its product lines carry snapshot pricing.
type WashTransaction struct {
	ID                uuid.UUID                  `gorm:"type:uuid;primary_key" json:"id"`
	TransactionNumber string                     `gorm:"size:50;unique;not null" json:"transaction_number"`
	CustomerID        uuid.UUID                  `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerVehicleID uuid.UUID                  `gorm:"type:uuid;not null;index" json:"customer_vehicle_id"`
	ShiftID           *uuid.UUID                 `gorm:"type:uuid;index" json:"shift_id,omitempty"`
	Status            enum.WashTransactionStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentMethod     enum.WashPaymentMethod     `gorm:"size:20;not null;default:'cash'" json:"payment_method"`
	TotalPrice        int64                      `gorm:"not null;default:0" json:"total_price"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
	DeletedAt         gorm.DeletedAt             `gorm:"index" json:"-"`

	// Relationships
	Customer Customer                 `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vehicle  CustomerVehicle          `gorm:"foreignKey:CustomerVehicleID" json:"vehicle,omitempty"`
	Products []WashTransactionProduct `gorm:"foreignKey:WashTransactionID" json:"products,omitempty"`
}

// BeforeCreate generates a UUID before creating a new wash transaction
func (w *WashTransaction) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WashTransaction model
func (WashTransaction) TableName() string {
	return "wash_transactions"
}

// WashTransactionProduct is a product line with snapshot price and subtotal
type WashTransactionProduct struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WashTransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"wash_transaction_id"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity          int       `gorm:"not null" json:"quantity"`
	Price             int64     `gorm:"not null" json:"price"`
	Subtotal          int64     `gorm:"not null" json:"subtotal"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (p *WashTransactionProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WashTransactionProduct model
func (WashTransactionProduct) TableName() string {
	return "wash_transaction_products"
}
