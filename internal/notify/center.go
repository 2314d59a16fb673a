package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"property-engine/internal/models"
)

// maxRetained caps the notification history per user; oldest entries
// are discarded first.
const maxRetained = 20

// Center holds the process-local notification history for one user.
// Nothing is persisted; history is lost on restart.
type Center struct {
	mu    sync.RWMutex
	items []models.Notification
}

// NewCenter creates an empty notification center
func NewCenter() *Center {
	return &Center{}
}

// Add prepends a notification, assigning id and timestamp, and trims
// the history to the retention cap
func (c *Center) Add(title, message string, typ models.NotificationType, link string) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now(),
		Link:      link,
	}

	c.mu.Lock()
	c.items = append([]models.Notification{n}, c.items...)
	if len(c.items) > maxRetained {
		c.items = c.items[:maxRetained]
	}
	c.mu.Unlock()
	return n
}

// List returns a snapshot of the retained notifications, newest first
func (c *Center) List() []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// MarkRead flags one notification as read
func (c *Center) MarkRead(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			return
		}
	}
}

// MarkAllRead flags every retained notification as read
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		c.items[i].Read = true
	}
}

// Clear drops the retained history
func (c *Center) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// UnreadCount returns the number of unread notifications
func (c *Center) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count := 0
	for i := range c.items {
		if !c.items[i].Read {
			count++
		}
	}
	return count
}
