package handler

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// ListUsers handles GET /api/auth/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, users)
}
