package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RentPayment represents a rent payment record for a property.
// DueDate and PaidDate are date-only strings (YYYY-MM-DD); Month is a
// free-text label such as "January 2025".
type RentPayment struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	TenantID   *string    `json:"tenant_id"`
	PropertyID string     `gorm:"index;not null" json:"property_id"`
	Amount     float64    `gorm:"not null" json:"amount"`
	DueDate    string     `gorm:"not null" json:"due_date"`
	PaidDate   *string    `json:"paid_date"`
	Status     RentStatus `gorm:"not null" json:"status"`
	Month      string     `gorm:"not null" json:"month"`
	LandlordID string     `gorm:"index;not null" json:"landlord_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (p *RentPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
