package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-engine/internal/models"
)

// dashboard aggregates the caller's record counts and rent statistics
// into one summary payload
func (a *API) dashboard(c *gin.Context) {
	identity := identityFrom(c)
	ctx := c.Request.Context()

	properties, err := a.properties.List(ctx, identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	tenants, err := a.tenants.List(ctx, identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	requests, err := a.maintenance.List(ctx, identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	stats, err := a.rent.Stats(ctx, identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}

	occupied := 0
	for _, p := range properties {
		if p.Status == models.PropertyOccupied {
			occupied++
		}
	}
	overdueTenants := 0
	for _, t := range tenants {
		if t.RentStatus == models.RentOverdue {
			overdueTenants++
		}
	}
	pendingRequests := 0
	for _, r := range requests {
		if r.Status == models.RequestPending {
			pendingRequests++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_properties":    len(properties),
		"occupied_properties": occupied,
		"total_tenants":       len(tenants),
		"overdue_tenants":     overdueTenants,
		"pending_requests":    pendingRequests,
		"rent":                stats,
	})
}
