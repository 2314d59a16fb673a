// Package export serializes the current in-memory entity lists into
// downloadable CSV reports. Every field is quoted; no server state is
// touched.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"property-engine/internal/models"
)

// writeRows emits a header row followed by data rows, quoting every
// field and doubling embedded quotes
func writeRows(w io.Writer, headers []string, rows [][]string) error {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, quoteLine(headers))
	for _, row := range rows {
		lines = append(lines, quoteLine(row))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func quoteLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PropertyReport writes the property overview report
func PropertyReport(w io.Writer, properties []models.Property) error {
	headers := []string{"Name", "Address", "Type", "Units", "Rent Amount", "Status"}
	rows := make([][]string, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, []string{
			p.Name, p.Address, string(p.Type),
			strconv.Itoa(p.Units), formatAmount(p.RentAmount), string(p.Status),
		})
	}
	return writeRows(w, headers, rows)
}

// TenantReport writes the tenant report, resolving linked property
// names with an N/A fallback
func TenantReport(w io.Writer, tenants []models.Tenant, properties []models.Property) error {
	names := propertyNames(properties)
	headers := []string{"Name", "Email", "Phone", "Property", "Move-in Date", "Lease End", "Rent Status"}
	rows := make([][]string, 0, len(tenants))
	for _, t := range tenants {
		property := "N/A"
		if t.PropertyID != nil {
			if name, ok := names[*t.PropertyID]; ok {
				property = name
			}
		}
		phone := t.Phone
		if phone == "" {
			phone = "N/A"
		}
		rows = append(rows, []string{
			t.Name, t.Email, phone, property, t.MoveInDate, t.LeaseEnd, string(t.RentStatus),
		})
	}
	return writeRows(w, headers, rows)
}

// RentReport writes the rent collection report
func RentReport(w io.Writer, payments []models.RentPayment, tenants []models.Tenant, properties []models.Property) error {
	propNames := propertyNames(properties)
	tenantNames := make(map[string]string, len(tenants))
	for _, t := range tenants {
		tenantNames[t.ID] = t.Name
	}

	headers := []string{"Tenant", "Property", "Amount", "Due Date", "Paid Date", "Status", "Month"}
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		tenant := "N/A"
		if p.TenantID != nil {
			if name, ok := tenantNames[*p.TenantID]; ok {
				tenant = name
			}
		}
		property := "N/A"
		if name, ok := propNames[p.PropertyID]; ok {
			property = name
		}
		paid := "Unpaid"
		if p.PaidDate != nil {
			paid = *p.PaidDate
		}
		rows = append(rows, []string{
			tenant, property, formatAmount(p.Amount), p.DueDate, paid, string(p.Status), p.Month,
		})
	}
	return writeRows(w, headers, rows)
}

// MaintenanceReport writes the maintenance history report. Descriptions
// are truncated to 100 characters and timestamps reduced to dates.
func MaintenanceReport(w io.Writer, requests []models.MaintenanceRequest, properties []models.Property) error {
	names := propertyNames(properties)
	headers := []string{"Title", "Property", "Priority", "Status", "Created", "Description"}
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		property := "N/A"
		if name, ok := names[r.PropertyID]; ok {
			property = name
		}
		description := r.Description
		if len(description) > 100 {
			description = description[:100]
		}
		rows = append(rows, []string{
			r.Title, property, string(r.Priority), string(r.Status),
			r.CreatedAt.Format("2006-01-02"), description,
		})
	}
	return writeRows(w, headers, rows)
}

// Filename returns the canonical download name for a report type
func Filename(report string) string {
	return fmt.Sprintf("%s-report.csv", report)
}

func propertyNames(properties []models.Property) map[string]string {
	names := make(map[string]string, len(properties))
	for _, p := range properties {
		names[p.ID] = p.Name
	}
	return names
}
