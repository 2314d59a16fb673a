package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-engine/internal/models"
)

func TestPropertyReportQuotesEveryField(t *testing.T) {
	var b strings.Builder
	err := PropertyReport(&b, []models.Property{{
		Name:       `The "Palms"`,
		Address:    "1 Main St, Unit 2",
		Type:       models.PropertyApartment,
		Units:      4,
		RentAmount: 1250.5,
		Status:     models.PropertyOccupied,
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Name","Address","Type","Units","Rent Amount","Status"`, lines[0])
	assert.Equal(t, `"The ""Palms""","1 Main St, Unit 2","apartment","4","1250.5","occupied"`, lines[1])
}

func TestTenantReportFallbacks(t *testing.T) {
	propID := "prop-1"
	var b strings.Builder
	err := TenantReport(&b, []models.Tenant{
		{Name: "Linked", Email: "l@example.com", Phone: "5551234567", PropertyID: &propID,
			MoveInDate: "2025-01-15", LeaseEnd: "2026-01-15", RentStatus: models.RentPaid},
		{Name: "Unlinked", Email: "u@example.com",
			MoveInDate: "2025-02-01", LeaseEnd: "2026-02-01", RentStatus: models.RentPending},
	}, []models.Property{{ID: propID, Name: "Sunset Apartments"}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `"Sunset Apartments"`)
	// missing property and phone both fall back to N/A
	assert.Contains(t, lines[2], `"N/A","N/A"`)
}

func TestRentReportResolvesNames(t *testing.T) {
	tenantID := "ten-1"
	var b strings.Builder
	err := RentReport(&b, []models.RentPayment{
		{TenantID: &tenantID, PropertyID: "prop-1", Amount: 1200, DueDate: "2025-03-01",
			Status: models.RentPending, Month: "2025-03"},
		{PropertyID: "missing", Amount: 900, DueDate: "2025-03-01",
			Status: models.RentOverdue, Month: "2025-03"},
	},
		[]models.Tenant{{ID: tenantID, Name: "Jordan"}},
		[]models.Property{{ID: "prop-1", Name: "Sunset"}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Jordan","Sunset","1200","2025-03-01","Unpaid","pending","2025-03"`, lines[1])
	assert.Equal(t, `"N/A","N/A","900","2025-03-01","Unpaid","overdue","2025-03"`, lines[2])
}

func TestMaintenanceReportTruncatesDescription(t *testing.T) {
	long := strings.Repeat("d", 150)
	created := time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)

	var b strings.Builder
	err := MaintenanceReport(&b, []models.MaintenanceRequest{{
		Title:       "Leak",
		PropertyID:  "prop-1",
		Priority:    models.PriorityHigh,
		Status:      models.RequestPending,
		CreatedAt:   created,
		Description: long,
	}}, []models.Property{{ID: "prop-1", Name: "Sunset"}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"`+strings.Repeat("d", 100)+`"`)
	assert.NotContains(t, lines[1], strings.Repeat("d", 101))
	// timestamps are reduced to the date
	assert.Contains(t, lines[1], `"2025-04-02"`)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "rent-report.csv", Filename("rent"))
	assert.Equal(t, "property-report.csv", Filename("property"))
}
