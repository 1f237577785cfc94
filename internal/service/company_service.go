package service

import (
	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/repository"
)

// CompanyService company directory business logic
type CompanyService interface {
	Create(req *domain.CompanyRequest) (*domain.Company, error)
	Get(id uint) (*domain.Company, error)
	List(page, limit int) ([]*domain.Company, *common.Pagination, error)
	Update(id uint, req *domain.CompanyRequest) (*domain.Company, error)
	Delete(id uint) error
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) Create(req *domain.CompanyRequest) (*domain.Company, error) {
	company := &domain.Company{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		Industry:    req.Industry,
		Location:    req.Location,
	}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Get(id uint) (*domain.Company, error) {
	return s.companyRepo.FindByID(id)
}

// List pages companies alphabetically
func (s *companyService) List(page, limit int) ([]*domain.Company, *common.Pagination, error) {
	companies, total, err := s.companyRepo.FindAll(page, limit)
	if err != nil {
		return nil, nil, err
	}
	return companies, common.NewPagination(page, limit, total), nil
}

func (s *companyService) Update(id uint, req *domain.CompanyRequest) (*domain.Company, error) {
	if _, err := s.companyRepo.FindByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"logo":        req.Logo,
		"website":     req.Website,
		"industry":    req.Industry,
		"location":    req.Location,
	}
	if err := s.companyRepo.Update(id, fields); err != nil {
		return nil, err
	}
	return s.companyRepo.FindByID(id)
}

func (s *companyService) Delete(id uint) error {
	if _, err := s.companyRepo.FindByID(id); err != nil {
		return err
	}
	return s.companyRepo.Delete(id)
}
