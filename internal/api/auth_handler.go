package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"property-engine/internal/auth"
	"property-engine/internal/common"
	"property-engine/internal/models"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// renderAuthError keeps the status of a coded error but swaps its
// message for the user-facing phrasing
func (a *API) renderAuthError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus()
	}
	c.JSON(status, gin.H{"error": auth.UserMessage(err)})
}

func (a *API) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleTenant
	}

	profile, err := a.sessions.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName, role)
	if err != nil {
		a.renderAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created! You can now log in.",
		"user":    profile,
	})
}

func (a *API) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := a.sessions.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		a.renderAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (a *API) logout(c *gin.Context) {
	identity := identityFrom(c)
	a.sessions.SignOut(identity.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (a *API) me(c *gin.Context) {
	identity := identityFrom(c)
	profile, err := a.store.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		a.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": profile,
		"role": identity.Role,
	})
}
