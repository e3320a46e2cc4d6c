package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// WorkOrder represents a queued unit of requested service for a vehicle.
// Service and F&D lines snapshot their unit price at creation; later catalog
// changes never alter an existing order.
type WorkOrder struct {
	ID                uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Code              string               `gorm:"size:50;unique;not null" json:"code"`
	QueueNo           int                  `gorm:"not null" json:"queue_no"`
	QueueDate         time.Time            `gorm:"type:date;not null;index" json:"queue_date"`
	CustomerID        uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerVehicleID uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_vehicle_id"`
	Status            enum.WorkOrderStatus `gorm:"size:20;not null;default:'new'" json:"status"`
	Notes             *string              `gorm:"type:text" json:"notes,omitempty"`
	ConfirmedAt       *time.Time           `json:"confirmed_at,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	DeletedAt         gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Customer Customer           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vehicle  CustomerVehicle    `gorm:"foreignKey:CustomerVehicleID" json:"vehicle,omitempty"`
	Services []WorkOrderService `gorm:"foreignKey:WorkOrderID" json:"services,omitempty"`
	Fds      []WorkOrderFd      `gorm:"foreignKey:WorkOrderID" json:"fds,omitempty"`
}

// BeforeCreate generates a UUID before creating a new work order
func (w *WorkOrder) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WorkOrder model
func (WorkOrder) TableName() string {
	return "work_orders"
}

// Total sums service and F&D line subtotals.
func (w *WorkOrder) Total() int64 {
	var total int64
	for _, s := range w.Services {
		total += s.Subtotal
	}
	for _, f := range w.Fds {
		total += f.Subtotal
	}
	return total
}

// WorkOrderService is a priced service line on a work order
type WorkOrderService struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkOrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"work_order_id"`
	ServiceItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_item_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	UnitPrice     int64     `gorm:"not null" json:"unit_price"`
	Subtotal      int64     `gorm:"not null" json:"subtotal"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	ServiceItem ServiceItem `gorm:"foreignKey:ServiceItemID" json:"service_item,omitempty"`
}

func (s *WorkOrderService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WorkOrderService model
func (WorkOrderService) TableName() string {
	return "work_order_services"
}

// WorkOrderFd is a priced food & drink line on a work order
type WorkOrderFd struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"work_order_id"`
	FdItemID    uuid.UUID `gorm:"type:uuid;not null;index" json:"fd_item_id"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"unit_price"`
	Subtotal    int64     `gorm:"not null" json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	FdItem FdItem `gorm:"foreignKey:FdItemID" json:"fd_item,omitempty"`
}

func (f *WorkOrderFd) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WorkOrderFd model
func (WorkOrderFd) TableName() string {
	return "work_order_fds"
}
