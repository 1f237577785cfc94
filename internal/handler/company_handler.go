package handler

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company directory requests
type CompanyHandler struct {
	service service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(service service.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create handles POST /api/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req domain.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	company, err := h.service.Create(&req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.CreatedResponse(c, company)
}

// Get handles GET /api/companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid company ID")
		return
	}

	company, err := h.service.Get(companyID)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, company)
}

// List handles GET /api/companies
func (h *CompanyHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	companies, pagination, err := h.service.List(page, limit)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.PaginatedResponse(c, companies, pagination)
}

// Update handles PUT /api/companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid company ID")
		return
	}

	var req domain.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body")
		return
	}

	company, err := h.service.Update(companyID, &req)
	if err != nil {
		common.FailFromError(c, err)
		return
	}

	common.SuccessResponse(c, company)
}

// Delete handles DELETE /api/companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	companyID, ok := parseIDParam(c, "id")
	if !ok {
		common.ErrorResponse(c, 400, "Invalid company ID")
		return
	}

	if err := h.service.Delete(companyID); err != nil {
		common.FailFromError(c, err)
		return
	}

	common.MessageResponse(c, "Company deleted")
}
