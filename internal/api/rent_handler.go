package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-engine/internal/forms"
)

func (a *API) listRentPayments(c *gin.Context) {
	identity := identityFrom(c)
	items, err := a.rent.List(c.Request.Context(), identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": items})
}

func (a *API) rentStats(c *gin.Context) {
	identity := identityFrom(c)
	stats, err := a.rent.Stats(c.Request.Context(), identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (a *API) createRentPayment(c *gin.Context) {
	var form forms.RentPaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if errs := form.Validate(); errs != nil {
		a.renderError(c, errs)
		return
	}

	identity := identityFrom(c)
	created, err := a.rent.Add(c.Request.Context(), identity.UserID, form.Model())
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded successfully!",
		"payment": created,
	})
}

func (a *API) updateRentPayment(c *gin.Context) {
	var form forms.RentPaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if errs := form.Validate(); errs != nil {
		a.renderError(c, errs)
		return
	}

	identity := identityFrom(c)
	updated, err := a.rent.Update(c.Request.Context(), identity.UserID, c.Param("id"), form.Patch())
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment updated successfully!",
		"payment": updated,
	})
}

func (a *API) deleteRentPayment(c *gin.Context) {
	identity := identityFrom(c)
	if err := a.rent.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully!"})
}
