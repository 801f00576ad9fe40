package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/models"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// login verifies credentials and returns a signed access token with the
// redacted user projection. The 401 message is deliberately generic so the
// response never reveals whether the email exists.
func (a *API) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	res, err := a.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		a.logger.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	_ = a.activity.Record(c.Request.Context(), res.User.ID, "auth.login", "successful login", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"token": res.Token, "user": res.User})
}

type registerRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role"`
}

// register creates a new user. Reachable only through the admin-gated route,
// see Router.
func (a *API) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and password are required"})
		return
	}

	profile, err := a.users.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "A user with this email already exists"})
		case errors.Is(err, common.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			a.logger.Error(c.Request.Context(), "registration failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "user.register",
		"registered "+profile.Email+" as "+string(profile.Role), c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": profile})
}

func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
