package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"property-engine/internal/blob"
	"property-engine/internal/forms"
)

func (a *API) listProperties(c *gin.Context) {
	identity := identityFrom(c)
	items, err := a.properties.List(c.Request.Context(), identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": items})
}

func (a *API) getProperty(c *gin.Context) {
	identity := identityFrom(c)
	property, err := a.properties.Get(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property})
}

func (a *API) createProperty(c *gin.Context) {
	var form forms.PropertyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if errs := form.Validate(); errs != nil {
		a.renderError(c, errs)
		return
	}

	identity := identityFrom(c)
	created, err := a.properties.Add(c.Request.Context(), identity.UserID, form.Model())
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Property added successfully!",
		"property": created,
	})
}

func (a *API) updateProperty(c *gin.Context) {
	var form forms.PropertyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if errs := form.Validate(); errs != nil {
		a.renderError(c, errs)
		return
	}

	identity := identityFrom(c)
	updated, err := a.properties.Update(c.Request.Context(), identity.UserID, c.Param("id"), form.Patch())
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Property updated successfully!",
		"property": updated,
	})
}

func (a *API) deleteProperty(c *gin.Context) {
	identity := identityFrom(c)
	if err := a.properties.Delete(c.Request.Context(), identity.UserID, c.Param("id")); err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted successfully!"})
}

// uploadPropertyImage stores the uploaded file under the property id and
// records the storage path on the property row
func (a *API) uploadPropertyImage(c *gin.Context) {
	identity := identityFrom(c)
	id := c.Param("id")

	// ownership check before touching storage
	if _, err := a.properties.Get(c.Request.Context(), identity.UserID, id); err != nil {
		a.renderError(c, err)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image format"})
		return
	}

	file, err := header.Open()
	if err != nil {
		a.renderError(c, err)
		return
	}
	defer file.Close()

	path := "properties/" + id + ext
	if err := a.images.Put(c.Request.Context(), path, file); err != nil {
		a.renderError(c, err)
		return
	}

	updated, err := a.properties.Update(c.Request.Context(), identity.UserID, id, map[string]interface{}{"image": &path})
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Image uploaded successfully!",
		"property": updated,
	})
}

// propertyImage streams the stored image back to the caller
func (a *API) propertyImage(c *gin.Context) {
	identity := identityFrom(c)
	property, err := a.properties.Get(c.Request.Context(), identity.UserID, c.Param("id"))
	if err != nil {
		a.renderError(c, err)
		return
	}
	if property.Image == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property has no image"})
		return
	}

	reader, err := a.images.Reader(c.Request.Context(), *property.Image)
	if errors.Is(err, blob.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err != nil {
		a.renderError(c, err)
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
