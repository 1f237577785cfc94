package handler

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/middleware"
	"github.com/antera/antera-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile, experience, education and skill requests
type ProfileHandler struct {
	service service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMe handles GET /api/profile
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)

	resp, err := h.service.GetProfile(userID, userID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// Get handles GET /api/profile/:userId
func (h *ProfileHandler) Get(c *gin.Context) {
	viewerID := middleware.GetUserID(c)
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid user ID")
		return
	}

	resp, err := h.service.GetProfile(viewerID, userID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// Update handles PUT /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(userID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, user)
}

// Search handles GET /api/users/search?q=
func (h *ProfileHandler) Search(c *gin.Context) {
	query := c.Query("q")
	page, limit := parsePagination(c)

	items, pagination, err := h.service.SearchUsers(query, page, limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.PaginatedResponse(c, items, pagination)
}

// AddExperience handles POST /api/profile/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	exp, err := h.service.AddExperience(userID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, exp)
}

// UpdateExperience handles PUT /api/profile/experience/:id
func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	userID := middleware.GetUserID(c)
	expID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid experience ID")
		return
	}

	var req domain.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	exp, err := h.service.UpdateExperience(userID, expID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, exp)
}

// DeleteExperience handles DELETE /api/profile/experience/:id
func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	userID := middleware.GetUserID(c)
	expID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid experience ID")
		return
	}

	if err := h.service.DeleteExperience(userID, expID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Experience deleted")
}

// AddEducation handles POST /api/profile/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	edu, err := h.service.AddEducation(userID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, edu)
}

// DeleteEducation handles DELETE /api/profile/education/:id
func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	eduID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid education ID")
		return
	}

	if err := h.service.DeleteEducation(userID, eduID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Education deleted")
}

// AddSkill handles POST /api/profile/skills
func (h *ProfileHandler) AddSkill(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	us, err := h.service.AddSkill(userID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, us)
}

// RemoveSkill handles DELETE /api/profile/skills/:id
func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	userID := middleware.GetUserID(c)
	usID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid skill ID")
		return
	}

	if err := h.service.RemoveSkill(userID, usID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Skill removed")
}
