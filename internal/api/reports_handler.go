package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"property-engine/internal/export"
)

// downloadReport serializes the caller's current records as a CSV
// attachment. The report type is part of the path.
func (a *API) downloadReport(c *gin.Context) {
	identity := identityFrom(c)
	ctx := c.Request.Context()
	report := c.Param("report")

	properties, err := a.properties.List(ctx, identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(report)))

	switch report {
	case "property":
		err = export.PropertyReport(c.Writer, properties)
	case "tenant":
		tenants, listErr := a.tenants.List(ctx, identity.UserID)
		if listErr != nil {
			a.renderError(c, listErr)
			return
		}
		err = export.TenantReport(c.Writer, tenants, properties)
	case "rent":
		payments, listErr := a.rent.List(ctx, identity.UserID)
		if listErr != nil {
			a.renderError(c, listErr)
			return
		}
		tenants, listErr := a.tenants.List(ctx, identity.UserID)
		if listErr != nil {
			a.renderError(c, listErr)
			return
		}
		err = export.RentReport(c.Writer, payments, tenants, properties)
	case "maintenance":
		requests, listErr := a.maintenance.List(ctx, identity.UserID)
		if listErr != nil {
			a.renderError(c, listErr)
			return
		}
		err = export.MaintenanceReport(c.Writer, requests, properties)
	default:
		c.Header("Content-Type", "application/json")
		c.Header("Content-Disposition", "")
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown report type"})
		return
	}

	if err != nil {
		a.log.Error().Err(err).Str("report", report).Msg("report write failed")
	}
}
