package repository

import (
	"strings"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user data access interface
type UserRepository interface {
	FindByID(id uint) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindSummariesByIDs(ids []uint) (map[uint]*domain.UserSummary, error)
	FindAllSummaries() ([]*domain.UserSummary, error)

	Create(user *domain.User) error
	UpdateFields(id uint, fields map[string]interface{}) error
	IncrementProfileViews(id uint) error

	ExistsByEmail(email string) (bool, error)

	// Search performs a case-insensitive substring match over
	// name, headline and bio
	Search(query string, page, limit int) ([]*domain.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by exact email match
func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindSummariesByIDs batch-loads public summaries (N+1 prevention)
func (r *userRepository) FindSummariesByIDs(ids []uint) (map[uint]*domain.UserSummary, error) {
	result := make(map[uint]*domain.UserSummary, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []*domain.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = u.ToSummary()
	}
	return result, nil
}

// FindAllSummaries lists every user's public summary
func (r *userRepository) FindAllSummaries() ([]*domain.UserSummary, error) {
	var users []*domain.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	summaries := make([]*domain.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = u.ToSummary()
	}
	return summaries, nil
}

// Create inserts a new user; a duplicate email surfaces as Conflict
func (r *userRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return common.ErrEmailTaken
		}
		return err
	}
	return nil
}

// UpdateFields updates specific columns of a user
func (r *userRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).Updates(fields).Error
}

// IncrementProfileViews bumps the view counter atomically
func (r *userRepository) IncrementProfileViews(id uint) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).
		UpdateColumn("profile_views", gorm.Expr("profile_views + 1")).Error
}

// ExistsByEmail checks whether the email is already registered
func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Search matches name/headline/bio case-insensitively with pagination
func (r *userRepository) Search(query string, page, limit int) ([]*domain.User, int64, error) {
	like := "%" + strings.ToLower(query) + "%"
	q := r.db.Model(&domain.User{}).Where(
		"LOWER(name) LIKE ? OR LOWER(headline) LIKE ? OR LOWER(bio) LIKE ?",
		like, like, like,
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*domain.User
	offset := (page - 1) * limit
	if err := q.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
