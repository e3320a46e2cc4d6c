package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ServiceItem represents a sellable wash/care service line
type ServiceItem struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name      string               `gorm:"size:255;not null" json:"name"`
	AppliesTo enum.VehicleCategory `gorm:"size:20;not null;default:'general'" json:"applies_to"`
	IsMainWash bool                `gorm:"default:false" json:"is_main_wash"`
	IsPremium  bool                `gorm:"default:false" json:"is_premium"`
	IsActive   bool                `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (s *ServiceItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServiceItem model
func (ServiceItem) TableName() string {
	return "service_items"
}

// EngineClass is a motorcycle engine displacement class (e.g. "<150cc")
type EngineClass struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *EngineClass) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (EngineClass) TableName() string { return "engine_classes" }

// HelmetType is a helmet construction class (e.g. "full face")
type HelmetType struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *HelmetType) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

func (HelmetType) TableName() string { return "helmet_types" }

// CarSize is a car body size class (e.g. "SUV")
type CarSize struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *CarSize) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (CarSize) TableName() string { return "car_sizes" }

// ApparelType is a garment class (e.g. "jacket")
type ApparelType struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *ApparelType) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (ApparelType) TableName() string { return "apparel_types" }

// PriceMatrix maps a service item plus optional dimensions to a price.
// A null dimension acts as a wildcard during lookup; the row matching the
// most concrete dimensions wins. Tuple uniqueness is enforced by a
// NULLS NOT DISTINCT index created alongside the migrations, since a plain
// composite unique index treats null dimensions as distinct.
type PriceMatrix struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ServiceItemID uuid.UUID  `gorm:"type:uuid;not null;index" json:"service_item_id"`
	EngineClassID *uuid.UUID `gorm:"type:uuid" json:"engine_class_id,omitempty"`
	HelmetTypeID  *uuid.UUID `gorm:"type:uuid" json:"helmet_type_id,omitempty"`
	CarSizeID     *uuid.UUID `gorm:"type:uuid" json:"car_size_id,omitempty"`
	ApparelTypeID *uuid.UUID `gorm:"type:uuid" json:"apparel_type_id,omitempty"`
	Price         int64      `gorm:"not null" json:"price"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relationships
	ServiceItem ServiceItem `gorm:"foreignKey:ServiceItemID" json:"-"`
}

func (p *PriceMatrix) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PriceMatrix model
func (PriceMatrix) TableName() string {
	return "price_matrix"
}

// Specificity counts the concrete (non-wildcard) dimensions on the row.
func (p *PriceMatrix) Specificity() int {
	n := 0
	if p.EngineClassID != nil {
		n++
	}
	if p.HelmetTypeID != nil {
		n++
	}
	if p.CarSizeID != nil {
		n++
	}
	if p.ApparelTypeID != nil {
		n++
	}
	return n
}

// FdItem is a food & drink menu item sold alongside wash services
type FdItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Price     int64          `gorm:"not null" json:"price"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (f *FdItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FdItem model
func (FdItem) TableName() string {
	return "fd_items"
}
