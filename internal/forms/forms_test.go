package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-engine/internal/models"
)

func validPropertyForm() PropertyForm {
	return PropertyForm{
		Name:       "Sunset Apartments",
		Address:    "123 Ocean Drive",
		Type:       "apartment",
		Units:      12,
		RentAmount: 1500,
		Status:     "vacant",
	}
}

func TestPropertyFormValid(t *testing.T) {
	form := validPropertyForm()
	require.Nil(t, form.Validate())

	property := form.Model()
	assert.Equal(t, "Sunset Apartments", property.Name)
	assert.Equal(t, models.PropertyVacant, property.Status)
	assert.Empty(t, property.LandlordID)
}

func TestPropertyFormBounds(t *testing.T) {
	form := validPropertyForm()
	form.Units = 0
	errs := form.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, "Must have at least 1 unit", errs["units"])

	form = validPropertyForm()
	form.Units = 1001
	assert.Equal(t, "Units must be less than 1000", form.Validate()["units"])

	form = validPropertyForm()
	form.RentAmount = 0
	assert.Equal(t, "Rent amount must be greater than 0", form.Validate()["rent_amount"])

	form = validPropertyForm()
	form.RentAmount = 2000000
	assert.Equal(t, "Rent amount is too high", form.Validate()["rent_amount"])

	form = validPropertyForm()
	form.Name = strings.Repeat("a", 101)
	assert.Equal(t, "Name must be less than 100 characters", form.Validate()["name"])

	form = validPropertyForm()
	form.Name = "   "
	assert.Equal(t, "Property name is required", form.Validate()["name"])

	form = validPropertyForm()
	form.Type = "castle"
	assert.Equal(t, "Please select a property type", form.Validate()["type"])
}

func validTenantForm() TenantForm {
	return TenantForm{
		Name:       "Jordan Smith",
		Email:      "jordan@example.com",
		Phone:      "5551234567",
		MoveInDate: "2025-01-15",
		LeaseEnd:   "2026-01-15",
		RentStatus: "paid",
	}
}

func TestTenantFormValid(t *testing.T) {
	form := validTenantForm()
	require.Nil(t, form.Validate())
}

func TestTenantLeaseEndBeforeMoveIn(t *testing.T) {
	form := validTenantForm()
	form.MoveInDate = "2025-01-15"
	form.LeaseEnd = "2025-01-10"
	errs := form.Validate()
	require.NotNil(t, errs)
	assert.Equal(t, "Lease end must be after move-in date", errs["lease_end"])

	// equal dates are also rejected
	form.LeaseEnd = "2025-01-15"
	assert.Equal(t, "Lease end must be after move-in date", form.Validate()["lease_end"])
}

func TestTenantFormFieldRules(t *testing.T) {
	form := validTenantForm()
	form.Email = "not-an-email"
	assert.Equal(t, "Invalid email address", form.Validate()["email"])

	form = validTenantForm()
	form.Phone = "12345"
	assert.Equal(t, "Phone number must be at least 10 digits", form.Validate()["phone"])

	form = validTenantForm()
	form.Phone = strings.Repeat("5", 21)
	assert.Equal(t, "Phone number is too long", form.Validate()["phone"])

	form = validTenantForm()
	form.MoveInDate = ""
	assert.Equal(t, "Move-in date is required", form.Validate()["move_in_date"])

	form = validTenantForm()
	form.RentStatus = "unknown"
	assert.Equal(t, "Please select rent status", form.Validate()["rent_status"])
}

func TestMaintenanceFormRules(t *testing.T) {
	form := MaintenanceForm{
		PropertyID:  "prop-1",
		Title:       "Leaking faucet",
		Description: "The kitchen faucet drips constantly.",
		Priority:    "medium",
		Status:      "pending",
	}
	require.Nil(t, form.Validate())

	form.Description = "too short"
	assert.Equal(t, "Description must be at least 10 characters", form.Validate()["description"])

	form.Description = strings.Repeat("x", 501)
	assert.Equal(t, "Description must be less than 500 characters", form.Validate()["description"])

	form.Description = "long enough description"
	form.PropertyID = ""
	assert.Equal(t, "Please select a property", form.Validate()["property_id"])

	form.PropertyID = "prop-1"
	form.Priority = "urgent-ish"
	assert.Equal(t, "Please select a priority", form.Validate()["priority"])
}

func TestRentPaymentFormRules(t *testing.T) {
	form := RentPaymentForm{
		PropertyID: "prop-1",
		Amount:     1200,
		DueDate:    "2025-03-01",
		Status:     "pending",
		Month:      "2025-03",
	}
	require.Nil(t, form.Validate())

	form.Amount = 0
	assert.Equal(t, "Amount must be greater than 0", form.Validate()["amount"])

	form.Amount = 1200
	form.DueDate = "03/01/2025"
	assert.Equal(t, "Due date is required", form.Validate()["due_date"])

	form.DueDate = "2025-03-01"
	bad := "yesterday"
	form.PaidDate = &bad
	assert.Equal(t, "Paid date must be a valid date", form.Validate()["paid_date"])
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{"b": "second", "a": "first"}
	// deterministic ordering by field name
	assert.Equal(t, "a: first; b: second", errs.Error())
}
