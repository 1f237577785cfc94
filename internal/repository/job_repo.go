package repository

import (
	"strings"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"gorm.io/gorm"
)

// JobRepository job posting and application data access interface
type JobRepository interface {
	Create(job *domain.Job) error
	FindByID(id uint) (*domain.Job, error)
	FindActive(filter *domain.JobFilter, page, limit int) ([]*domain.Job, int64, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	IncrementViews(id uint) error
	IncrementApplicants(id uint) error

	CreateApplication(app *domain.JobApplication) error
	FindApplicationByID(id uint) (*domain.JobApplication, error)
	FindApplications(jobID uint, status string, page, limit int) ([]*domain.JobApplication, int64, error)
	UpdateApplication(id uint, fields map[string]interface{}) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *domain.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.First(&job, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindActive pages active jobs newest-first with optional filters.
// Location and search use case-insensitive substring matching.
func (r *jobRepository) FindActive(filter *domain.JobFilter, page, limit int) ([]*domain.Job, int64, error) {
	q := r.db.Model(&domain.Job{}).Where("is_active = ?", true)

	if filter != nil {
		if filter.JobType != "" {
			q = q.Where("job_type = ?", filter.JobType)
		}
		if filter.WorkplaceType != "" {
			q = q.Where("workplace_type = ?", filter.WorkplaceType)
		}
		if filter.Location != "" {
			q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
		}
		if filter.Search != "" {
			like := "%" + strings.ToLower(filter.Search) + "%"
			q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []*domain.Job
	offset := (page - 1) * limit
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&domain.Job{}).Where("id = ?", id).Updates(fields).Error
}

func (r *jobRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Job{}, id).Error
}

// IncrementViews bumps the view counter atomically
func (r *jobRepository) IncrementViews(id uint) error {
	return r.db.Model(&domain.Job{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// IncrementApplicants bumps the applicant counter atomically
func (r *jobRepository) IncrementApplicants(id uint) error {
	return r.db.Model(&domain.Job{}).Where("id = ?", id).
		UpdateColumn("applicants_count", gorm.Expr("applicants_count + 1")).Error
}

// CreateApplication inserts an application; one per job+email,
// enforced by the unique index
func (r *jobRepository) CreateApplication(app *domain.JobApplication) error {
	if err := r.db.Create(app).Error; err != nil {
		if isDuplicateKey(err) {
			return common.ErrConflict
		}
		return err
	}
	return nil
}

func (r *jobRepository) FindApplicationByID(id uint) (*domain.JobApplication, error) {
	var app domain.JobApplication
	if err := r.db.First(&app, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *jobRepository) FindApplications(jobID uint, status string, page, limit int) ([]*domain.JobApplication, int64, error) {
	q := r.db.Model(&domain.JobApplication{}).Where("job_id = ?", jobID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []*domain.JobApplication
	offset := (page - 1) * limit
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *jobRepository) UpdateApplication(id uint, fields map[string]interface{}) error {
	return r.db.Model(&domain.JobApplication{}).Where("id = ?", id).Updates(fields).Error
}
