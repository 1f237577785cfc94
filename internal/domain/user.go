package domain

import "time"

// User represents a registered member of the network
type User struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Password     string    `gorm:"column:password;type:varchar(255)" json:"-"`
	Headline     *string   `gorm:"column:headline;type:varchar(255)" json:"headline,omitempty"`
	Bio          *string   `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Avatar       *string   `gorm:"column:avatar;type:varchar(500)" json:"avatar,omitempty"`
	CoverImage   *string   `gorm:"column:cover_image;type:varchar(500)" json:"coverImage,omitempty"`
	Location     *string   `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	Website      *string   `gorm:"column:website;type:varchar(500)" json:"website,omitempty"`
	Phone        *string   `gorm:"column:phone;type:varchar(50)" json:"phone,omitempty"`
	IsVerified   bool      `gorm:"column:is_verified;default:false" json:"isVerified"`
	ProfileViews uint      `gorm:"column:profile_views;default:0" json:"profileViews"`
	CompanyID    *uint     `gorm:"column:company_id;index" json:"companyId,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserSummary is the public projection embedded in connections,
// conversations, posts and search results
type UserSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Avatar   *string `json:"avatar,omitempty"`
	Headline *string `json:"headline,omitempty"`
	Location *string `json:"location,omitempty"`
}

// ToSummary converts a User to its public summary
func (u *User) ToSummary() *UserSummary {
	return &UserSummary{
		ID:       u.ID,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Headline: u.Headline,
		Location: u.Location,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
