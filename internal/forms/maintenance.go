package forms

import (
	"strings"

	"property-engine/internal/models"
)

// MaintenanceForm carries the fields of the maintenance request form
type MaintenanceForm struct {
	PropertyID  string  `json:"property_id"`
	TenantID    *string `json:"tenant_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
}

// Validate checks field constraints and returns per-field messages
func (f *MaintenanceForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.PropertyID) == "" {
		errs["property_id"] = "Please select a property"
	}

	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs["title"] = "Title is required"
	} else if len(title) > 100 {
		errs["title"] = "Title must be less than 100 characters"
	}

	description := strings.TrimSpace(f.Description)
	if len(description) < 10 {
		errs["description"] = "Description must be at least 10 characters"
	} else if len(description) > 500 {
		errs["description"] = "Description must be less than 500 characters"
	}

	if !models.Priority(f.Priority).Valid() {
		errs["priority"] = "Please select a priority"
	}

	if !models.RequestStatus(f.Status).Valid() {
		errs["status"] = "Please select a status"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Model builds the normalized request from validated form values.
// RequestedBy and the owning landlord id are stamped by the service.
func (f *MaintenanceForm) Model() *models.MaintenanceRequest {
	return &models.MaintenanceRequest{
		PropertyID:  strings.TrimSpace(f.PropertyID),
		TenantID:    optional(f.TenantID),
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Priority:    models.Priority(f.Priority),
		Status:      models.RequestStatus(f.Status),
	}
}

// Patch builds the column updates for edit mode
func (f *MaintenanceForm) Patch() map[string]interface{} {
	return map[string]interface{}{
		"property_id": strings.TrimSpace(f.PropertyID),
		"tenant_id":   optional(f.TenantID),
		"title":       strings.TrimSpace(f.Title),
		"description": strings.TrimSpace(f.Description),
		"priority":    f.Priority,
		"status":      f.Status,
	}
}
