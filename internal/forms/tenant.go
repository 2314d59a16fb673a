package forms

import (
	"strings"

	"property-engine/internal/models"
)

// TenantForm carries the fields of the tenant create/edit form
type TenantForm struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	PropertyID *string `json:"property_id"`
	MoveInDate string  `json:"move_in_date"`
	LeaseEnd   string  `json:"lease_end"`
	RentStatus string  `json:"rent_status"`
}

// Validate checks field constraints, including the cross-field rule that
// the lease end date is strictly after the move-in date
func (f *TenantForm) Validate() FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "Tenant name is required"
	} else if len(name) > 100 {
		errs["name"] = "Name must be less than 100 characters"
	}

	email := strings.TrimSpace(f.Email)
	if email == "" || !validEmail(email) {
		errs["email"] = "Invalid email address"
	} else if len(email) > 255 {
		errs["email"] = "Email must be less than 255 characters"
	}

	phone := strings.TrimSpace(f.Phone)
	if len(phone) < 10 {
		errs["phone"] = "Phone number must be at least 10 digits"
	} else if len(phone) > 20 {
		errs["phone"] = "Phone number is too long"
	}

	moveIn, moveInOK := parseDate(strings.TrimSpace(f.MoveInDate))
	if !moveInOK {
		errs["move_in_date"] = "Move-in date is required"
	}

	leaseEnd, leaseEndOK := parseDate(strings.TrimSpace(f.LeaseEnd))
	if !leaseEndOK {
		errs["lease_end"] = "Lease end date is required"
	}

	if moveInOK && leaseEndOK && !leaseEnd.After(moveIn) {
		errs["lease_end"] = "Lease end must be after move-in date"
	}

	if !models.RentStatus(f.RentStatus).Valid() {
		errs["rent_status"] = "Please select rent status"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Model builds the normalized tenant from validated form values
func (f *TenantForm) Model() *models.Tenant {
	return &models.Tenant{
		Name:       strings.TrimSpace(f.Name),
		Email:      strings.TrimSpace(f.Email),
		Phone:      strings.TrimSpace(f.Phone),
		PropertyID: optional(f.PropertyID),
		MoveInDate: strings.TrimSpace(f.MoveInDate),
		LeaseEnd:   strings.TrimSpace(f.LeaseEnd),
		RentStatus: models.RentStatus(f.RentStatus),
	}
}

// Patch builds the column updates for edit mode
func (f *TenantForm) Patch() map[string]interface{} {
	return map[string]interface{}{
		"name":         strings.TrimSpace(f.Name),
		"email":        strings.TrimSpace(f.Email),
		"phone":        strings.TrimSpace(f.Phone),
		"property_id":  optional(f.PropertyID),
		"move_in_date": strings.TrimSpace(f.MoveInDate),
		"lease_end":    strings.TrimSpace(f.LeaseEnd),
		"rent_status":  f.RentStatus,
	}
}
