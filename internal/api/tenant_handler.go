package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-engine/internal/forms"
)

func (a *API) listTenants(c *gin.Context) {
	identity := identityFrom(c)
	items, err := a.tenants.List(c.Request.Context(), identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenants": items})
}

func (a *API) createTenant(c *gin.Context) {
	var form forms.TenantForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if errs := form.Validate(); errs != nil {
		a.renderError(c, errs)
		return
	}

	identity := identityFrom(c)
	created, err := a.tenants.Add(c.Request.Context(), identity.UserID, form.Model())
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Tenant added successfully!",
		"tenant":  created,
	})
}

func (a *API) updateTenant(c *gin.Context) {
	var form forms.TenantForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if errs := form.Validate(); errs != nil {
		a.renderError(c, errs)
		return
	}

	identity := identityFrom(c)
	updated, err := a.tenants.Update(c.Request.Context(), identity.UserID, c.Param("id"), form.Patch())
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tenant updated successfully!",
		"tenant":  updated,
	})
}

func (a *API) deleteTenant(c *gin.Context) {
	identity := identityFrom(c)
	if err := a.tenants.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tenant deleted successfully!"})
}
