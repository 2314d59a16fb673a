package forms

import (
	"strings"

	"property-engine/internal/models"
)

// PropertyForm carries the fields of the property create/edit form
type PropertyForm struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Type       string  `json:"type"`
	Units      int     `json:"units"`
	RentAmount float64 `json:"rent_amount"`
	Status     string  `json:"status"`
	TenantID   *string `json:"tenant_id"`
	Image      *string `json:"image"`
}

// Validate checks field constraints and returns per-field messages
func (f *PropertyForm) Validate() FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "Property name is required"
	} else if len(name) > 100 {
		errs["name"] = "Name must be less than 100 characters"
	}

	address := strings.TrimSpace(f.Address)
	if address == "" {
		errs["address"] = "Address is required"
	} else if len(address) > 200 {
		errs["address"] = "Address must be less than 200 characters"
	}

	if !models.PropertyType(f.Type).Valid() {
		errs["type"] = "Please select a property type"
	}

	if f.Units < 1 {
		errs["units"] = "Must have at least 1 unit"
	} else if f.Units > 1000 {
		errs["units"] = "Units must be less than 1000"
	}

	if f.RentAmount < 1 {
		errs["rent_amount"] = "Rent amount must be greater than 0"
	} else if f.RentAmount > 1000000 {
		errs["rent_amount"] = "Rent amount is too high"
	}

	if !models.PropertyStatus(f.Status).Valid() {
		errs["status"] = "Please select a status"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Model builds the normalized property from validated form values.
// The owning landlord id is stamped by the service, never by callers.
func (f *PropertyForm) Model() *models.Property {
	return &models.Property{
		Name:       strings.TrimSpace(f.Name),
		Address:    strings.TrimSpace(f.Address),
		Type:       models.PropertyType(f.Type),
		Units:      f.Units,
		RentAmount: f.RentAmount,
		Status:     models.PropertyStatus(f.Status),
		TenantID:   optional(f.TenantID),
		Image:      optional(f.Image),
	}
}

// Patch builds the column updates for edit mode
func (f *PropertyForm) Patch() map[string]interface{} {
	return map[string]interface{}{
		"name":        strings.TrimSpace(f.Name),
		"address":     strings.TrimSpace(f.Address),
		"type":        f.Type,
		"units":       f.Units,
		"rent_amount": f.RentAmount,
		"status":      f.Status,
		"tenant_id":   optional(f.TenantID),
		"image":       optional(f.Image),
	}
}
