package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giavix1302/be-gym-management-system-sub000/models"
	authService "github.com/giavix1302/be-gym-management-system-sub000/services/auth"
)

type AuthHandler struct {
	Service authService.AuthService
}

func NewAuthHandler(svc authService.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var req models.StaffSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	staff, token, err := h.Service.SignIn(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": staff, "token": token})
}

func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	staffID, _ := c.Get("staffID")
	id, ok := staffID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	tokenHash := c.GetString("tokenHash")
	if err := h.Service.SignOut(c.Request.Context(), id, tokenHash); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
