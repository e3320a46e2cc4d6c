package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// POSTransaction is the authoritative settlement record: what was sold, to
// whom, for how much, and how it was paid. TotalAmount and ChangeAmount are
// always derived server-side, never taken from the client.
type POSTransaction struct {
	ID                uuid.UUID                 `gorm:"type:uuid;primary_key" json:"id"`
	TransactionNumber string                    `gorm:"size:50;unique;not null" json:"transaction_number"`
	CustomerID        uuid.UUID                 `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerVehicleID *uuid.UUID                `gorm:"type:uuid;index" json:"customer_vehicle_id,omitempty"`
	WorkOrderID       *uuid.UUID                `gorm:"type:uuid;index" json:"work_order_id,omitempty"`
	WashTransactionID *uuid.UUID                `gorm:"type:uuid;index" json:"wash_transaction_id,omitempty"`
	ShiftID           *uuid.UUID                `gorm:"type:uuid;index" json:"shift_id,omitempty"`
	UserID            uuid.UUID                 `gorm:"type:uuid;not null;index" json:"user_id"`
	Status            enum.POSTransactionStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	Source            enum.POSSource            `gorm:"size:30;not null;default:'direct_sale'" json:"source"`
	PaymentMethod     enum.PaymentMethod        `gorm:"size:20;not null" json:"payment_method"`
	Subtotal          int64                     `gorm:"not null;default:0" json:"subtotal"`
	TaxAmount         int64                     `gorm:"not null;default:0" json:"tax_amount"`
	DiscountAmount    int64                     `gorm:"not null;default:0" json:"discount_amount"`
	TotalAmount       int64                     `gorm:"not null;default:0" json:"total_amount"`
	AmountPaid        int64                     `gorm:"not null;default:0" json:"amount_paid"`
	ChangeAmount      int64                     `gorm:"not null;default:0" json:"change_amount"`
	GatewayRef        *string                   `gorm:"size:100" json:"gateway_ref,omitempty"`
	QRString          *string                   `gorm:"type:text" json:"qr_string,omitempty"`
	CompletedAt       *time.Time                `json:"completed_at,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
	DeletedAt         gorm.DeletedAt            `gorm:"index" json:"-"`

	// Relationships
	Customer        Customer             `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vehicle         *CustomerVehicle     `gorm:"foreignKey:CustomerVehicleID" json:"vehicle,omitempty"`
	WorkOrder       *WorkOrder           `gorm:"foreignKey:WorkOrderID" json:"work_order,omitempty"`
	WashTransaction *WashTransaction     `gorm:"foreignKey:WashTransactionID" json:"wash_transaction,omitempty"`
	Shift           *Shift               `gorm:"foreignKey:ShiftID" json:"-"`
	User            User                 `gorm:"foreignKey:UserID" json:"-"`
	Items           []POSTransactionItem `gorm:"foreignKey:POSTransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new POS transaction
func (t *POSTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the POSTransaction model
func (POSTransaction) TableName() string {
	return "pos_transactions"
}

// POSTransactionItem is a product line with snapshot price and subtotal
type POSTransactionItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	POSTransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"pos_transaction_id"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity         int       `gorm:"not null" json:"quantity"`
	Price            int64     `gorm:"not null" json:"price"`
	Subtotal         int64     `gorm:"not null" json:"subtotal"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (i *POSTransactionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the POSTransactionItem model
func (POSTransactionItem) TableName() string {
	return "pos_transaction_items"
}
