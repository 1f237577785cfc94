package handler

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/middleware"
	"github.com/antera/antera-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// PostHandler handles feed, like and comment requests
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	resp, err := h.service.Create(userID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Get handles GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid post ID")
		return
	}

	resp, err := h.service.Get(userID, postID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// ListFeed handles GET /api/posts
func (h *PostHandler) ListFeed(c *gin.Context) {
	userID := middleware.GetUserID(c)
	page, limit := parsePagination(c)

	items, pagination, err := h.service.ListFeed(userID, page, limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.PaginatedResponse(c, items, pagination)
}

// Update handles PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid post ID")
		return
	}

	var req domain.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	resp, err := h.service.Update(userID, postID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// Delete handles DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid post ID")
		return
	}

	if err := h.service.Delete(userID, postID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Post deleted")
}

// ToggleLike handles POST /api/posts/:id/like
func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid post ID")
		return
	}

	resp, err := h.service.ToggleLike(userID, postID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// AddComment handles POST /api/posts/:id/comments
func (h *PostHandler) AddComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid post ID")
		return
	}

	var req domain.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	resp, err := h.service.AddComment(userID, postID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// ListComments handles GET /api/posts/:id/comments
func (h *PostHandler) ListComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid post ID")
		return
	}

	items, err := h.service.ListComments(postID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, items)
}

// DeleteComment handles DELETE /api/posts/comments/:id
func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid comment ID")
		return
	}

	if err := h.service.DeleteComment(userID, commentID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Comment deleted")
}
