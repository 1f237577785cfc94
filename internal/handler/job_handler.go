package handler

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/middleware"
	"github.com/antera/antera-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// JobHandler handles job posting and application requests
type JobHandler struct {
	service service.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(service service.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req domain.CreateJobRequest
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

// Get handles GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid job ID")
		return
	}

	resp, err := h.service.Get(jobID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// List handles GET /api/jobs with optional filters
func (h *JobHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := &domain.JobFilter{
		JobType:       c.Query("jobType"),
		WorkplaceType: c.Query("workplaceType"),
		Location:      c.Query("location"),
		Search:        c.Query("search"),
	}

	items, pagination, err := h.service.List(filter, page, limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.PaginatedResponse(c, items, pagination)
}

// Update handles PUT /api/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid job ID")
		return
	}

	var req domain.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	resp, err := h.service.Update(userID, jobID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// Delete handles DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid job ID")
		return
	}

	if err := h.service.Delete(userID, jobID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Job deleted")
}

// Deactivate handles PATCH /api/jobs/:id/deactivate, closing the
// posting to new applications
func (h *JobHandler) Deactivate(c *gin.Context) {
	userID := middleware.GetUserID(c)
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid job ID")
		return
	}

	resp, err := h.service.Deactivate(userID, jobID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, resp)
}

// Apply handles POST /api/jobs/:id/apply
func (h *JobHandler) Apply(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid job ID")
		return
	}

	var req domain.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	app, err := h.service.Apply(jobID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, app)
}

// ListApplications handles GET /api/jobs/:id/applications
func (h *JobHandler) ListApplications(c *gin.Context) {
	userID := middleware.GetUserID(c)
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid job ID")
		return
	}
	page, limit := parsePagination(c)
	status := c.Query("status")

	apps, pagination, err := h.service.ListApplications(userID, jobID, status, page, limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.PaginatedResponse(c, apps, pagination)
}

// UpdateApplicationStatus handles PATCH /api/jobs/:id/applications/:appId
func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid job ID")
		return
	}
	appID, ok := parseIDParam(c, "appId")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid application ID")
		return
	}

	var req domain.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	app, err := h.service.UpdateApplicationStatus(userID, jobID, appID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, app)
}
