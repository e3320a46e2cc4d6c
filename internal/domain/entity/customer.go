package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a wash customer with optional membership state.
//
// TotalTransactions and TotalPremiumTransactions are caches derived from the
// transaction tables. They are recomputed through an explicit service call
// after every owned transaction write, never incremented in place.
type Customer struct {
	ID                  uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	Name                string                 `gorm:"size:255;not null" json:"name"`
	Phone               string                 `gorm:"size:50;uniqueIndex;not null" json:"phone"`
	Address             *string                `gorm:"type:text" json:"address,omitempty"`
	DeviceToken         *string                `gorm:"size:512" json:"-"`
	MembershipTypeID    *uuid.UUID             `gorm:"type:uuid" json:"membership_type_id,omitempty"`
	MembershipStatus    *enum.MembershipStatus `gorm:"size:20" json:"membership_status,omitempty"`
	MembershipExpiresAt *time.Time             `json:"membership_expires_at,omitempty"`
	TotalTransactions   int64                  `gorm:"default:0" json:"total_transactions"`
	TotalPremiumTransactions int64             `gorm:"default:0" json:"total_premium_transactions"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
	DeletedAt           gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	MembershipType   *MembershipType   `gorm:"foreignKey:MembershipTypeID" json:"membership_type,omitempty"`
	Vehicles         []CustomerVehicle `gorm:"foreignKey:CustomerID" json:"vehicles,omitempty"`
	WashTransactions []WashTransaction `gorm:"foreignKey:CustomerID" json:"-"`
	POSTransactions  []POSTransaction  `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave clears expired membership state. The type, status, and expiry
// are reset together or not at all.
func (c *Customer) BeforeSave(tx *gorm.DB) error {
	if c.MembershipExpired(time.Now()) {
		c.ClearMembership()
	}
	return nil
}

// MembershipExpired reports whether the membership expiry has passed at now.
func (c *Customer) MembershipExpired(now time.Time) bool {
	return c.MembershipExpiresAt != nil && c.MembershipExpiresAt.Before(now)
}

// ClearMembership resets membership type, status, and expiry together.
func (c *Customer) ClearMembership() {
	c.MembershipTypeID = nil
	c.MembershipStatus = nil
	c.MembershipExpiresAt = nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// MembershipType represents a purchasable membership tier
type MembershipType struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:255;unique;not null" json:"name"`
	DurationDays int            `gorm:"not null" json:"duration_days"`
	Price        int64          `gorm:"not null" json:"price"`
	IsPremium    bool           `gorm:"default:false" json:"is_premium"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new membership type
func (m *MembershipType) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MembershipType model
func (MembershipType) TableName() string {
	return "membership_types"
}
