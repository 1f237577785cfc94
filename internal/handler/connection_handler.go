package handler

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/middleware"
	"github.com/antera/antera-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ConnectionHandler handles connection requests
type ConnectionHandler struct {
	service service.ConnectionService
}

// NewConnectionHandler creates a new ConnectionHandler
func NewConnectionHandler(service service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{service: service}
}

// Send handles POST /api/connections
func (h *ConnectionHandler) Send(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.SendConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	resp, err := h.service.Send(userID, req.ReceiverID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Accept handles PATCH /api/connections/:id/accept
func (h *ConnectionHandler) Accept(c *gin.Context) {
	userID := middleware.GetUserID(c)
	connID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid connection ID")
		return
	}

	resp, err := h.service.Accept(userID, connID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// Reject handles PATCH /api/connections/:id/reject
func (h *ConnectionHandler) Reject(c *gin.Context) {
	userID := middleware.GetUserID(c)
	connID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid connection ID")
		return
	}

	if err := h.service.Reject(userID, connID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Connection request rejected")
}

// Remove handles DELETE /api/connections/:id
func (h *ConnectionHandler) Remove(c *gin.Context) {
	userID := middleware.GetUserID(c)
	connID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid connection ID")
		return
	}

	if err := h.service.Remove(userID, connID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Connection removed")
}

// List handles GET /api/connections?status=accepted|pending
func (h *ConnectionHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	status := c.Query("status")

	items, err := h.service.List(userID, status)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, items)
}

// ListPending handles GET /api/connections/pending
func (h *ConnectionHandler) ListPending(c *gin.Context) {
	userID := middleware.GetUserID(c)

	items, err := h.service.ListPending(userID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, items)
}

// Status handles GET /api/connections/status/:userId
func (h *ConnectionHandler) Status(c *gin.Context) {
	userID := middleware.GetUserID(c)
	otherID, ok := parseIDParam(c, "userId")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid user ID")
		return
	}

	resp, err := h.service.Status(userID, otherID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}
