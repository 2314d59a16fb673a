package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RentStatus tracks whether rent is settled for a tenant or payment
type RentStatus string

const (
	RentPaid    RentStatus = "paid"
	RentPending RentStatus = "pending"
	RentOverdue RentStatus = "overdue"
)

func (s RentStatus) Valid() bool {
	switch s {
	case RentPaid, RentPending, RentOverdue:
		return true
	}
	return false
}

// Tenant represents a tenant managed by a landlord.
// MoveInDate and LeaseEnd are date-only strings (YYYY-MM-DD); the form
// layer guarantees LeaseEnd is strictly after MoveInDate.
type Tenant struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"not null" json:"name"`
	Email      string     `gorm:"not null" json:"email"`
	Phone      string     `gorm:"not null" json:"phone"`
	PropertyID *string    `json:"property_id"`
	MoveInDate string     `gorm:"not null" json:"move_in_date"`
	LeaseEnd   string     `gorm:"not null" json:"lease_end"`
	RentStatus RentStatus `gorm:"not null" json:"rent_status"`
	LandlordID string     `gorm:"index;not null" json:"landlord_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
