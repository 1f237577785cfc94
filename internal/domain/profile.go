package domain

import "time"

// Experience is a work history entry on a user's profile
type Experience struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint       `gorm:"column:user_id;index" json:"userId"`
	Title       string     `gorm:"column:title;type:varchar(255)" json:"title"`
	CompanyName string     `gorm:"column:company_name;type:varchar(255)" json:"companyName"`
	Location    *string    `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	Description *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	StartDate   time.Time  `gorm:"column:start_date" json:"startDate"`
	EndDate     *time.Time `gorm:"column:end_date" json:"endDate,omitempty"`
	IsCurrent   bool       `gorm:"column:is_current;default:false" json:"isCurrent"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Experience) TableName() string { return "experiences" }

// Education is a schooling entry on a user's profile
type Education struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       uint       `gorm:"column:user_id;index" json:"userId"`
	School       string     `gorm:"column:school;type:varchar(255)" json:"school"`
	Degree       *string    `gorm:"column:degree;type:varchar(255)" json:"degree,omitempty"`
	FieldOfStudy *string    `gorm:"column:field_of_study;type:varchar(255)" json:"fieldOfStudy,omitempty"`
	Description  *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	StartDate    time.Time  `gorm:"column:start_date" json:"startDate"`
	EndDate      *time.Time `gorm:"column:end_date" json:"endDate,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Education) TableName() string { return "educations" }

// Skill is a globally shared skill name, deduplicated case-insensitively
type Skill struct {
	ID   uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);uniqueIndex" json:"name"`
}

func (Skill) TableName() string { return "skills" }

// UserSkill attaches a skill to a user; one attachment per user+skill
type UserSkill struct {
	ID      uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID  uint   `gorm:"column:user_id;uniqueIndex:idx_user_skill" json:"userId"`
	SkillID uint   `gorm:"column:skill_id;uniqueIndex:idx_user_skill" json:"skillId"`
	Skill   *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (UserSkill) TableName() string { return "user_skills" }

// UpdateProfileRequest is the body of PUT /profile; nil fields are left unchanged
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Headline   *string `json:"headline"`
	Bio        *string `json:"bio"`
	Avatar     *string `json:"avatar"`
	CoverImage *string `json:"coverImage"`
	Location   *string `json:"location"`
	Website    *string `json:"website"`
	Phone      *string `json:"phone"`
	CompanyID  *uint   `json:"companyId"`
}

// ExperienceRequest is the body of experience create/update
type ExperienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	CompanyName string     `json:"companyName" binding:"required"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
	IsCurrent   bool       `json:"isCurrent"`
}

// EducationRequest is the body of POST /profile/education
type EducationRequest struct {
	School       string     `json:"school" binding:"required"`
	Degree       *string    `json:"degree"`
	FieldOfStudy *string    `json:"fieldOfStudy"`
	Description  *string    `json:"description"`
	StartDate    time.Time  `json:"startDate" binding:"required"`
	EndDate      *time.Time `json:"endDate"`
}

// AddSkillRequest is the body of POST /profile/skills
type AddSkillRequest struct {
	SkillName string `json:"skillName" binding:"required"`
}

// ProfileResponse is the full public profile
type ProfileResponse struct {
	*User
	Company          *CompanySummary `json:"company,omitempty"`
	Experiences      []*Experience   `json:"experiences"`
	Educations       []*Education    `json:"educations"`
	Skills           []*UserSkill    `json:"skills"`
	PostsCount       int64           `json:"postsCount"`
	ConnectionsCount int64           `json:"connectionsCount"`
}
