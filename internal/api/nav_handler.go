package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-engine/internal/models"
)

// Section is one entry of the role-gated navigation
type Section struct {
	Name  string `json:"name"`
	Href  string `json:"href"`
	roles []models.Role
}

var navSections = []Section{
	{Name: "Dashboard", Href: "/", roles: []models.Role{models.RoleAdmin, models.RoleLandlord, models.RoleTenant}},
	{Name: "Properties", Href: "/properties", roles: []models.Role{models.RoleAdmin, models.RoleLandlord}},
	{Name: "Tenants", Href: "/tenants", roles: []models.Role{models.RoleAdmin, models.RoleLandlord}},
	{Name: "Rent", Href: "/rent", roles: []models.Role{models.RoleAdmin, models.RoleLandlord}},
	{Name: "Maintenance", Href: "/maintenance", roles: []models.Role{models.RoleAdmin, models.RoleLandlord, models.RoleTenant}},
	{Name: "Reports", Href: "/reports", roles: []models.Role{models.RoleAdmin, models.RoleLandlord}},
	{Name: "Settings", Href: "/settings", roles: []models.Role{models.RoleAdmin, models.RoleLandlord, models.RoleTenant}},
}

// VisibleSections returns the navigation entries the given role may see.
// An empty role sees nothing; sections are never shown optimistically
// while the role is unresolved.
func VisibleSections(role models.Role) []Section {
	if role == "" {
		return []Section{}
	}
	visible := make([]Section, 0, len(navSections))
	for _, s := range navSections {
		for _, r := range s.roles {
			if r == role {
				visible = append(visible, s)
				break
			}
		}
	}
	return visible
}

func (a *API) navigation(c *gin.Context) {
	identity := identityFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"role":     identity.Role,
		"sections": VisibleSections(identity.Role),
	})
}
