package forms

import (
	"strings"

	"property-engine/internal/models"
)

// RentPaymentForm carries the fields of the rent payment form
type RentPaymentForm struct {
	TenantID   *string `json:"tenant_id"`
	PropertyID string  `json:"property_id"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"due_date"`
	PaidDate   *string `json:"paid_date"`
	Status     string  `json:"status"`
	Month      string  `json:"month"`
}

// Validate checks field constraints and returns per-field messages
func (f *RentPaymentForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.PropertyID) == "" {
		errs["property_id"] = "Property is required"
	}

	if f.Amount < 1 {
		errs["amount"] = "Amount must be greater than 0"
	}

	if _, ok := parseDate(strings.TrimSpace(f.DueDate)); !ok {
		errs["due_date"] = "Due date is required"
	}

	if paid := optional(f.PaidDate); paid != nil {
		if _, ok := parseDate(*paid); !ok {
			errs["paid_date"] = "Paid date must be a valid date"
		}
	}

	if !models.RentStatus(f.Status).Valid() {
		errs["status"] = "Please select a status"
	}

	if strings.TrimSpace(f.Month) == "" {
		errs["month"] = "Month is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Model builds the normalized payment from validated form values
func (f *RentPaymentForm) Model() *models.RentPayment {
	return &models.RentPayment{
		TenantID:   optional(f.TenantID),
		PropertyID: strings.TrimSpace(f.PropertyID),
		Amount:     f.Amount,
		DueDate:    strings.TrimSpace(f.DueDate),
		PaidDate:   optional(f.PaidDate),
		Status:     models.RentStatus(f.Status),
		Month:      strings.TrimSpace(f.Month),
	}
}

// Patch builds the column updates for edit mode
func (f *RentPaymentForm) Patch() map[string]interface{} {
	return map[string]interface{}{
		"tenant_id":   optional(f.TenantID),
		"property_id": strings.TrimSpace(f.PropertyID),
		"amount":      f.Amount,
		"due_date":    strings.TrimSpace(f.DueDate),
		"paid_date":   optional(f.PaidDate),
		"status":      f.Status,
		"month":       strings.TrimSpace(f.Month),
	}
}
