package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Shift is a cashier's open/close accounting session. At most one active
// shift may exist per user; closing is terminal.
type Shift struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	StartTime    time.Time        `gorm:"not null" json:"start_time"`
	EndTime      *time.Time       `json:"end_time,omitempty"`
	InitialCash  int64            `gorm:"not null;default:0" json:"initial_cash"`
	FinalCash    *int64           `json:"final_cash,omitempty"`
	ReceivedFrom string           `gorm:"size:255" json:"received_from"`
	TotalSales   int64            `gorm:"not null;default:0" json:"total_sales"`
	Status       enum.ShiftStatus `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// Relationships
	User             User              `gorm:"foreignKey:UserID" json:"-"`
	WashTransactions []WashTransaction `gorm:"foreignKey:ShiftID" json:"-"`
	POSTransactions  []POSTransaction  `gorm:"foreignKey:ShiftID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shift
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shift model
func (Shift) TableName() string {
	return "shifts"
}

// ExpectedCash is the drawer amount the close procedure checks against:
// opening float plus recorded sales.
func (s *Shift) ExpectedCash() int64 {
	return s.InitialCash + s.TotalSales
}
