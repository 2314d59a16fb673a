// Package api exposes the HTTP surface: authentication, the four
// entity collections, reports, notifications and navigation.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"property-engine/internal/auth"
	"property-engine/internal/blob"
	"property-engine/internal/common"
	"property-engine/internal/forms"
	"property-engine/internal/notify"
	"property-engine/internal/services"
	"property-engine/internal/store"
)

// API bundles the handlers' dependencies
type API struct {
	sessions      *auth.SessionManager
	store         *store.Store
	properties    *services.PropertyService
	tenants       *services.TenantService
	maintenance   *services.MaintenanceService
	rent          *services.RentService
	notifications *notify.Manager
	hub           *notify.Hub
	images        blob.Storage
	log           zerolog.Logger
}

// Deps collects everything the API needs
type Deps struct {
	Sessions      *auth.SessionManager
	Store         *store.Store
	Properties    *services.PropertyService
	Tenants       *services.TenantService
	Maintenance   *services.MaintenanceService
	Rent          *services.RentService
	Notifications *notify.Manager
	Hub           *notify.Hub
	Images        blob.Storage
	Log           zerolog.Logger
}

// New creates the API from its dependencies
func New(deps Deps) *API {
	return &API{
		sessions:      deps.Sessions,
		store:         deps.Store,
		properties:    deps.Properties,
		tenants:       deps.Tenants,
		maintenance:   deps.Maintenance,
		rent:          deps.Rent,
		notifications: deps.Notifications,
		hub:           deps.Hub,
		images:        deps.Images,
		log:           deps.Log.With().Str("component", "api").Logger(),
	}
}

// renderError maps application errors to HTTP responses. Validation
// errors carry their per-field messages; coded errors carry their
// status; anything else is an internal error.
func (a *API) renderError(c *gin.Context, err error) {
	var fieldErrs forms.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrs,
		})
		return
	}

	var appErr *common.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}

	a.log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
