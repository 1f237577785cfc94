package repository

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"gorm.io/gorm"
)

// CompanyRepository company data access interface
type CompanyRepository interface {
	Create(company *domain.Company) error
	FindByID(id uint) (*domain.Company, error)
	FindAll(page, limit int) ([]*domain.Company, int64, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *domain.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) FindByID(id uint) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.First(&company, id).Error; err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindAll(page, limit int) ([]*domain.Company, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []*domain.Company
	offset := (page - 1) * limit
	err := r.db.Order("name").Offset(offset).Limit(limit).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *companyRepository) Update(id uint, fields map[string]interface{}) error {
	return r.db.Model(&domain.Company{}).Where("id = ?", id).Updates(fields).Error
}

func (r *companyRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Company{}, id).Error
}
