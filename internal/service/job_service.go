package service

import (
	"errors"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/repository"
)

// JobService job posting and application business logic
type JobService interface {
	Create(posterID uint, req *domain.CreateJobRequest) (*domain.JobResponse, error)
	Get(jobID uint) (*domain.JobResponse, error)
	List(filter *domain.JobFilter, page, limit int) ([]*domain.JobResponse, *common.Pagination, error)
	Update(userID, jobID uint, req *domain.UpdateJobRequest) (*domain.JobResponse, error)
	Delete(userID, jobID uint) error
	Deactivate(userID, jobID uint) (*domain.JobResponse, error)

	Apply(jobID uint, req *domain.ApplyRequest) (*domain.JobApplication, error)
	ListApplications(userID, jobID uint, status string, page, limit int) ([]*domain.JobApplication, *common.Pagination, error)
	UpdateApplicationStatus(userID, jobID, appID uint, req *domain.UpdateApplicationStatusRequest) (*domain.JobApplication, error)
}

type jobService struct {
	jobRepo     repository.JobRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository, companyRepo repository.CompanyRepository) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

// Create posts a job. The poster's company, when set, becomes the
// job's company.
func (s *jobService) Create(posterID uint, req *domain.CreateJobRequest) (*domain.JobResponse, error) {
	poster, err := s.userRepo.FindByID(posterID)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		Title:                  req.Title,
		Description:            req.Description,
		Location:               req.Location,
		JobType:                req.JobType,
		WorkplaceType:          req.WorkplaceType,
		SalaryRange:            req.SalaryRange,
		Requirements:           req.Requirements,
		Benefits:               req.Benefits,
		ExternalApplicationURL: req.ExternalApplicationURL,
		CompanyID:              poster.CompanyID,
		PostedByID:             posterID,
		IsActive:               true,
		ExpiresAt:              req.ExpiresAt,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return s.toResponse(job)
}

// Get returns a job and bumps its view counter
func (s *jobService) Get(jobID uint) (*domain.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.IncrementViews(jobID); err != nil {
		return nil, err
	}
	job.ViewsCount++

	return s.toResponse(job)
}

// List pages active jobs newest-first with optional filters
func (s *jobService) List(filter *domain.JobFilter, page, limit int) ([]*domain.JobResponse, *common.Pagination, error) {
	jobs, total, err := s.jobRepo.FindActive(filter, page, limit)
	if err != nil {
		return nil, nil, err
	}

	items := make([]*domain.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		item, err := s.toResponse(job)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	return items, common.NewPagination(page, limit, total), nil
}

// Update applies the non-nil fields. Poster only.
func (s *jobService) Update(userID, jobID uint, req *domain.UpdateJobRequest) (*domain.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != userID {
		return nil, common.ErrForbidden
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.JobType != nil {
		fields["job_type"] = *req.JobType
	}
	if req.WorkplaceType != nil {
		fields["workplace_type"] = *req.WorkplaceType
	}
	if req.SalaryRange != nil {
		fields["salary_range"] = *req.SalaryRange
	}
	if req.Requirements != nil {
		fields["requirements"] = *req.Requirements
	}
	if req.Benefits != nil {
		fields["benefits"] = *req.Benefits
	}

	if len(fields) > 0 {
		if err := s.jobRepo.Update(jobID, fields); err != nil {
			return nil, err
		}
	}

	job, err = s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(job)
}

// Delete removes a job permanently. Poster only.
func (s *jobService) Delete(userID, jobID uint) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return err
	}
	if job.PostedByID != userID {
		return common.ErrForbidden
	}
	return s.jobRepo.Delete(jobID)
}

// Deactivate closes a job to new applications; the row and its
// applications are kept. Poster only.
func (s *jobService) Deactivate(userID, jobID uint) (*domain.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != userID {
		return nil, common.ErrForbidden
	}
	if err := s.jobRepo.Update(jobID, map[string]interface{}{"is_active": false}); err != nil {
		return nil, err
	}
	job.IsActive = false
	return s.toResponse(job)
}

// Apply submits an application to an active job. One application per
// job+email; the applicant counter only moves when the insert lands.
func (s *jobService) Apply(jobID uint, req *domain.ApplyRequest) (*domain.JobApplication, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, common.ErrNotFound
	}

	app := &domain.JobApplication{
		JobID:     jobID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ResumeURL: req.ResumeURL,
		Education: req.Education,
		Status:    domain.ApplicationPending,
	}
	if err := s.jobRepo.CreateApplication(app); err != nil {
		return nil, err
	}
	if err := s.jobRepo.IncrementApplicants(jobID); err != nil {
		return nil, err
	}
	return app, nil
}

// ListApplications pages a job's applications. Poster only.
func (s *jobService) ListApplications(userID, jobID uint, status string, page, limit int) ([]*domain.JobApplication, *common.Pagination, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, nil, err
	}
	if job.PostedByID != userID {
		return nil, nil, common.ErrForbidden
	}

	apps, total, err := s.jobRepo.FindApplications(jobID, status, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return apps, common.NewPagination(page, limit, total), nil
}

// UpdateApplicationStatus moves an application through the review flow.
// Poster only; the application must belong to the given job.
func (s *jobService) UpdateApplicationStatus(userID, jobID, appID uint, req *domain.UpdateApplicationStatusRequest) (*domain.JobApplication, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != userID {
		return nil, common.ErrForbidden
	}

	app, err := s.jobRepo.FindApplicationByID(appID)
	if err != nil {
		return nil, err
	}
	if app.JobID != jobID {
		return nil, common.ErrNotFound
	}

	fields := map[string]interface{}{"status": req.Status}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if err := s.jobRepo.UpdateApplication(appID, fields); err != nil {
		return nil, err
	}
	return s.jobRepo.FindApplicationByID(appID)
}

func (s *jobService) toResponse(job *domain.Job) (*domain.JobResponse, error) {
	summaries, err := s.userRepo.FindSummariesByIDs([]uint{job.PostedByID})
	if err != nil {
		return nil, err
	}

	resp := &domain.JobResponse{
		Job:      job,
		PostedBy: summaries[job.PostedByID],
	}
	if job.CompanyID != nil {
		company, err := s.companyRepo.FindByID(*job.CompanyID)
		if err == nil {
			resp.Company = company.ToSummary()
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}
	return resp, nil
}
