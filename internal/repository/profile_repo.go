package repository

import (
	"strings"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"gorm.io/gorm"
)

// ProfileRepository experience, education and skill data access interface
type ProfileRepository interface {
	CreateExperience(exp *domain.Experience) error
	FindExperienceByID(id uint) (*domain.Experience, error)
	FindExperiences(userID uint) ([]*domain.Experience, error)
	UpdateExperience(id uint, fields map[string]interface{}) error
	DeleteExperience(id uint) error

	CreateEducation(edu *domain.Education) error
	FindEducationByID(id uint) (*domain.Education, error)
	FindEducations(userID uint) ([]*domain.Education, error)
	DeleteEducation(id uint) error

	// FindSkillByNameInsensitive matches a skill name case-insensitively
	FindSkillByNameInsensitive(name string) (*domain.Skill, error)
	CreateSkill(skill *domain.Skill) error
	CreateUserSkill(us *domain.UserSkill) error
	FindUserSkillByID(id uint) (*domain.UserSkill, error)
	FindUserSkills(userID uint) ([]*domain.UserSkill, error)
	DeleteUserSkill(id uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateExperience(exp *domain.Experience) error {
	return r.db.Create(exp).Error
}

func (r *profileRepository) FindExperienceByID(id uint) (*domain.Experience, error) {
	var exp domain.Experience
	if err := r.db.First(&exp, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &exp, nil
}

// FindExperiences returns a user's experiences, most recent start first
func (r *profileRepository) FindExperiences(userID uint) ([]*domain.Experience, error) {
	var exps []*domain.Experience
	err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&exps).Error
	return exps, err
}

func (r *profileRepository) UpdateExperience(id uint, fields map[string]interface{}) error {
	return r.db.Model(&domain.Experience{}).Where("id = ?", id).Updates(fields).Error
}

func (r *profileRepository) DeleteExperience(id uint) error {
	return r.db.Delete(&domain.Experience{}, id).Error
}

func (r *profileRepository) CreateEducation(edu *domain.Education) error {
	return r.db.Create(edu).Error
}

func (r *profileRepository) FindEducationByID(id uint) (*domain.Education, error) {
	var edu domain.Education
	if err := r.db.First(&edu, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &edu, nil
}

func (r *profileRepository) FindEducations(userID uint) ([]*domain.Education, error) {
	var edus []*domain.Education
	err := r.db.Where("user_id = ?", userID).Order("start_date DESC").Find(&edus).Error
	return edus, err
}

func (r *profileRepository) DeleteEducation(id uint) error {
	return r.db.Delete(&domain.Education{}, id).Error
}

func (r *profileRepository) FindSkillByNameInsensitive(name string) (*domain.Skill, error) {
	var skill domain.Skill
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&skill).Error
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *profileRepository) CreateSkill(skill *domain.Skill) error {
	if err := r.db.Create(skill).Error; err != nil {
		if isDuplicateKey(err) {
			return common.ErrConflict
		}
		return err
	}
	return nil
}

// CreateUserSkill attaches a skill; duplicate attach surfaces as Conflict
func (r *profileRepository) CreateUserSkill(us *domain.UserSkill) error {
	if err := r.db.Create(us).Error; err != nil {
		if isDuplicateKey(err) {
			return common.ErrConflict
		}
		return err
	}
	return nil
}

func (r *profileRepository) FindUserSkillByID(id uint) (*domain.UserSkill, error) {
	var us domain.UserSkill
	if err := r.db.First(&us, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &us, nil
}

func (r *profileRepository) FindUserSkills(userID uint) ([]*domain.UserSkill, error) {
	var skills []*domain.UserSkill
	err := r.db.Preload("Skill").Where("user_id = ?", userID).Find(&skills).Error
	return skills, err
}

func (r *profileRepository) DeleteUserSkill(id uint) error {
	return r.db.Delete(&domain.UserSkill{}, id).Error
}
