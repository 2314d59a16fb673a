package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyType classifies a property
type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyCondo      PropertyType = "condo"
	PropertyCommercial PropertyType = "commercial"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyCondo, PropertyCommercial:
		return true
	}
	return false
}

// PropertyStatus tracks occupancy of a property
type PropertyStatus string

const (
	PropertyOccupied    PropertyStatus = "occupied"
	PropertyVacant      PropertyStatus = "vacant"
	PropertyMaintenance PropertyStatus = "maintenance"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyOccupied, PropertyVacant, PropertyMaintenance:
		return true
	}
	return false
}

// Property represents a rental property owned by a landlord
type Property struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Address    string         `gorm:"not null" json:"address"`
	Type       PropertyType   `gorm:"not null" json:"type"`
	Units      int            `gorm:"not null" json:"units"`
	RentAmount float64        `gorm:"not null" json:"rent_amount"`
	Status     PropertyStatus `gorm:"not null" json:"status"`
	LandlordID string         `gorm:"index;not null" json:"landlord_id"`
	TenantID   *string        `json:"tenant_id"`
	Image      *string        `json:"image"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
