package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-engine/internal/models"
)

// Router builds the gin engine with all routes attached
func (a *API) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(a.requestLogger(), gin.Recovery())

	r.GET("/health", a.health)

	v1 := r.Group("/api/v1")
	v1.POST("/auth/signup", a.signup)
	v1.POST("/auth/login", a.login)

	authed := v1.Group("", a.Authenticate())
	authed.POST("/auth/logout", a.logout)
	authed.GET("/auth/me", a.me)
	authed.GET("/navigation", a.navigation)
	authed.GET("/dashboard", a.dashboard)

	properties := authed.Group("/properties", a.RequireRole(models.RoleAdmin, models.RoleLandlord))
	properties.GET("", a.listProperties)
	properties.POST("", a.createProperty)
	properties.GET("/:id", a.getProperty)
	properties.PUT("/:id", a.updateProperty)
	properties.DELETE("/:id", a.deleteProperty)
	properties.POST("/:id/image", a.uploadPropertyImage)
	properties.GET("/:id/image", a.propertyImage)

	tenants := authed.Group("/tenants", a.RequireRole(models.RoleAdmin, models.RoleLandlord))
	tenants.GET("", a.listTenants)
	tenants.POST("", a.createTenant)
	tenants.PUT("/:id", a.updateTenant)
	tenants.DELETE("/:id", a.deleteTenant)

	rent := authed.Group("/rent", a.RequireRole(models.RoleAdmin, models.RoleLandlord))
	rent.GET("", a.listRentPayments)
	rent.GET("/stats", a.rentStats)
	rent.POST("", a.createRentPayment)
	rent.PUT("/:id", a.updateRentPayment)
	rent.DELETE("/:id", a.deleteRentPayment)

	// tenants may file and track requests themselves
	maintenance := authed.Group("/maintenance")
	maintenance.GET("", a.listMaintenance)
	maintenance.POST("", a.createMaintenance)
	maintenance.PUT("/:id", a.updateMaintenance)
	maintenance.DELETE("/:id", a.deleteMaintenance)

	reports := authed.Group("/reports", a.RequireRole(models.RoleAdmin, models.RoleLandlord))
	reports.GET("/:report", a.downloadReport)

	notifications := authed.Group("/notifications")
	notifications.GET("", a.listNotifications)
	notifications.GET("/ws", a.notificationsSocket)
	notifications.POST("/:id/read", a.markNotificationRead)
	notifications.POST("/read-all", a.markAllNotificationsRead)
	notifications.DELETE("", a.clearNotifications)

	return r
}

func (a *API) health(c *gin.Context) {
	if err := a.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
