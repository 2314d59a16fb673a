package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority ranks the urgency of a maintenance request
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// RequestStatus tracks the lifecycle of a maintenance request
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in-progress"
	RequestCompleted  RequestStatus = "completed"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestInProgress, RequestCompleted:
		return true
	}
	return false
}

// MaintenanceRequest represents a repair request filed against a property
type MaintenanceRequest struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	PropertyID  string        `gorm:"index;not null" json:"property_id"`
	TenantID    *string       `json:"tenant_id"`
	RequestedBy string        `gorm:"not null" json:"requested_by"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `gorm:"not null" json:"description"`
	Priority    Priority      `gorm:"not null" json:"priority"`
	Status      RequestStatus `gorm:"not null" json:"status"`
	LandlordID  string        `gorm:"index;not null" json:"landlord_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (m *MaintenanceRequest) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
