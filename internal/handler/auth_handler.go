package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minesight/rockfall-backend-go/internal/middleware"
	"github.com/minesight/rockfall-backend-go/internal/models"
	"github.com/minesight/rockfall-backend-go/internal/service"
	"github.com/minesight/rockfall-backend-go/pkg/response"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /auth/login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email, password and role are required")
		return
	}

	result, err := h.authService.Login(req)
	if err != nil {
		var roleErr *service.RoleMismatchError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case errors.As(err, &roleErr):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Success(c, result)
}

// Logout handles POST /auth/logout/. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists for API symmetry.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, gin.H{"message": "Logout successful"})
}

// Profile handles GET /auth/profile/
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.Profile(claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, user)
}

// RefreshToken handles POST /auth/token/refresh/
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "refresh token is required")
		return
	}

	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		response.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	response.Success(c, gin.H{"access": access})
}
