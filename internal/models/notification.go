package models

import "time"

// NotificationType categorizes an in-app notification
type NotificationType string

const (
	NotificationMaintenance NotificationType = "maintenance"
	NotificationRent        NotificationType = "rent"
	NotificationTenant      NotificationType = "tenant"
	NotificationProperty    NotificationType = "property"
)

// Notification is a process-local record derived from change events.
// It is never persisted; history is lost on restart.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
	Link      string           `json:"link,omitempty"`
}
