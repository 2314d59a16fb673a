package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-engine/internal/forms"
)

func (a *API) listMaintenance(c *gin.Context) {
	identity := identityFrom(c)
	items, err := a.maintenance.List(c.Request.Context(), identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": items})
}

func (a *API) createMaintenance(c *gin.Context) {
	var form forms.MaintenanceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if errs := form.Validate(); errs != nil {
		a.renderError(c, errs)
		return
	}

	identity := identityFrom(c)
	created, err := a.maintenance.Add(c.Request.Context(), identity.UserID, identity.UserID, form.Model())
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Maintenance request added successfully!",
		"request": created,
	})
}

func (a *API) updateMaintenance(c *gin.Context) {
	var form forms.MaintenanceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if errs := form.Validate(); errs != nil {
		a.renderError(c, errs)
		return
	}

	identity := identityFrom(c)
	updated, err := a.maintenance.Update(c.Request.Context(), identity.UserID, c.Param("id"), form.Patch())
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Request updated successfully!",
		"request": updated,
	})
}

func (a *API) deleteMaintenance(c *gin.Context) {
	identity := identityFrom(c)
	if err := a.maintenance.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted successfully!"})
}
