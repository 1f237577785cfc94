package handler

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/middleware"
	"github.com/antera/antera-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// MessageHandler handles conversation and message requests
type MessageHandler struct {
	service service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(service service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Resolve handles GET /api/messages/conversations/:id where id is the
// other user. Returns the single conversation with that user, creating
// it on first contact.
func (h *MessageHandler) Resolve(c *gin.Context) {
	userID := middleware.GetUserID(c)
	otherID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid user ID")
		return
	}

	resp, err := h.service.Resolve(userID, otherID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// ListConversations handles GET /api/messages/conversations
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID := middleware.GetUserID(c)

	items, err := h.service.ListConversations(userID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, items)
}

// SendMessage handles POST /api/messages/conversations/:id/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	convID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid conversation ID")
		return
	}

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	resp, err := h.service.SendMessage(userID, convID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	middleware.MessageSent()
	common.CreatedResponse(c, resp)
}

// ListMessages handles GET /api/messages/conversations/:id/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID := middleware.GetUserID(c)
	convID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid conversation ID")
		return
	}
	page, limit := parsePagination(c)

	items, pagination, err := h.service.ListMessages(userID, convID, page, limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.PaginatedResponse(c, items, pagination)
}

// MarkAsRead handles PATCH /api/messages/conversations/:id/read
func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	userID := middleware.GetUserID(c)
	convID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid conversation ID")
		return
	}

	updated, err := h.service.MarkAsRead(userID, convID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"updated": updated})
}

// UnreadCount handles GET /api/messages/unread-count
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	count, err := h.service.UnreadCount(userID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, &domain.UnreadCountResponse{UnreadCount: count})
}
