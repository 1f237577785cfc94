package domain

import "time"

// Job application statuses
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationRejected = "rejected"
	ApplicationAccepted = "accepted"
)

// Job is a job posting, associated with the posting user and
// optionally a company
type Job struct {
	ID                     uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title                  string     `gorm:"column:title;type:varchar(255)" json:"title"`
	Description            string     `gorm:"column:description;type:text" json:"description"`
	Location               *string    `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	JobType                *string    `gorm:"column:job_type;type:varchar(50)" json:"jobType,omitempty"`
	WorkplaceType          *string    `gorm:"column:workplace_type;type:varchar(50)" json:"workplaceType,omitempty"`
	SalaryRange            *string    `gorm:"column:salary_range;type:varchar(100)" json:"salaryRange,omitempty"`
	Requirements           *string    `gorm:"column:requirements;type:text" json:"requirements,omitempty"`
	Benefits               *string    `gorm:"column:benefits;type:text" json:"benefits,omitempty"`
	ExternalApplicationURL *string    `gorm:"column:external_application_url;type:varchar(500)" json:"externalApplicationUrl,omitempty"`
	CompanyID              *uint      `gorm:"column:company_id;index" json:"companyId,omitempty"`
	PostedByID             uint       `gorm:"column:posted_by_id;index" json:"postedById"`
	IsActive               bool       `gorm:"column:is_active;default:true" json:"isActive"`
	ViewsCount             uint       `gorm:"column:views_count;default:0" json:"viewsCount"`
	ApplicantsCount        uint       `gorm:"column:applicants_count;default:0" json:"applicantsCount"`
	ExpiresAt              *time.Time `gorm:"column:expires_at" json:"expiresAt,omitempty"`
	CreatedAt              time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Job) TableName() string { return "jobs" }

// JobApplication is a candidacy for a job; one per job+email
type JobApplication struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	JobID     uint      `gorm:"column:job_id;uniqueIndex:idx_application_job_email" json:"jobId"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex:idx_application_job_email" json:"email"`
	Phone     *string   `gorm:"column:phone;type:varchar(50)" json:"phone,omitempty"`
	ResumeURL *string   `gorm:"column:resume_url;type:varchar(500)" json:"resumeUrl,omitempty"`
	Education *string   `gorm:"column:education;type:text" json:"education,omitempty"`
	Status    string    `gorm:"column:status;type:varchar(20);default:'pending'" json:"status"`
	Notes     *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (JobApplication) TableName() string { return "job_applications" }

// CreateJobRequest is the body of POST /jobs
type CreateJobRequest struct {
	Title                  string     `json:"title" binding:"required"`
	Description            string     `json:"description" binding:"required"`
	Location               *string    `json:"location"`
	JobType                *string    `json:"jobType"`
	WorkplaceType          *string    `json:"workplaceType"`
	SalaryRange            *string    `json:"salaryRange"`
	Requirements           *string    `json:"requirements"`
	Benefits               *string    `json:"benefits"`
	ExternalApplicationURL *string    `json:"externalApplicationUrl"`
	ExpiresAt              *time.Time `json:"expiresAt"`
}

// UpdateJobRequest is the body of PUT /jobs/:id; nil fields are left unchanged
type UpdateJobRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	JobType       *string `json:"jobType"`
	WorkplaceType *string `json:"workplaceType"`
	SalaryRange   *string `json:"salaryRange"`
	Requirements  *string `json:"requirements"`
	Benefits      *string `json:"benefits"`
}

// JobFilter narrows the job listing
type JobFilter struct {
	JobType       string
	WorkplaceType string
	Location      string
	Search        string
}

// ApplyRequest is the body of POST /jobs/:id/apply
type ApplyRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone"`
	ResumeURL *string `json:"resumeUrl"`
	Education *string `json:"education"`
}

// UpdateApplicationStatusRequest is the body of PATCH application status
type UpdateApplicationStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending reviewed rejected accepted"`
	Notes  *string `json:"notes"`
}

// JobResponse is a job with its company and poster summaries
type JobResponse struct {
	*Job
	Company  *CompanySummary `json:"company,omitempty"`
	PostedBy *UserSummary    `json:"postedBy"`
}
