package domain

import "time"

// Company is an organization users can belong to and jobs can be posted for
type Company struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255)" json:"name"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	Logo        *string   `gorm:"column:logo;type:varchar(500)" json:"logo,omitempty"`
	Website     *string   `gorm:"column:website;type:varchar(500)" json:"website,omitempty"`
	Industry    *string   `gorm:"column:industry;type:varchar(255)" json:"industry,omitempty"`
	Location    *string   `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Company) TableName() string { return "companies" }

// CompanyRequest is the body of company create/update
type CompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
	Location    *string `json:"location"`
}

// CompanySummary is the projection embedded in profiles and jobs
type CompanySummary struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo,omitempty"`
}

// ToSummary converts a Company to its embedded projection
func (c *Company) ToSummary() *CompanySummary {
	return &CompanySummary{ID: c.ID, Name: c.Name, Logo: c.Logo}
}
