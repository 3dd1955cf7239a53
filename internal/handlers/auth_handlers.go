package handlers

import (
	"net/http"

	"haveli_pos_backend/internal/services"
	"haveli_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// LoginUser handles console login and returns an access token.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}
	resp, err := h.authService.Login(req)
	if err != nil {
		respondServiceError(c, err, "Login failed.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCurrentUser echoes the authenticated identity from the token claims.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id":  c.GetString("userID"),
		"username": c.GetString("username"),
		"role":     c.GetString("userRole"),
		"bu":       c.GetString("userUnit"),
	})
}
