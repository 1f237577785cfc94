package service

import (
	"errors"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/repository"
)

// ProfileService profile, experience, education and skill business logic
type ProfileService interface {
	GetProfile(viewerID, userID uint) (*domain.ProfileResponse, error)
	UpdateProfile(userID uint, req *domain.UpdateProfileRequest) (*domain.User, error)
	SearchUsers(query string, page, limit int) ([]*domain.UserSummary, *common.Pagination, error)

	AddExperience(userID uint, req *domain.ExperienceRequest) (*domain.Experience, error)
	UpdateExperience(userID, expID uint, req *domain.ExperienceRequest) (*domain.Experience, error)
	DeleteExperience(userID, expID uint) error

	AddEducation(userID uint, req *domain.EducationRequest) (*domain.Education, error)
	DeleteEducation(userID, eduID uint) error

	AddSkill(userID uint, req *domain.AddSkillRequest) (*domain.UserSkill, error)
	RemoveSkill(userID, userSkillID uint) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	connRepo    repository.ConnectionRepository
	postRepo    repository.PostRepository
	companyRepo repository.CompanyRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	connRepo repository.ConnectionRepository,
	postRepo repository.PostRepository,
	companyRepo repository.CompanyRepository,
) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		connRepo:    connRepo,
		postRepo:    postRepo,
		companyRepo: companyRepo,
	}
}

// GetProfile assembles the full public profile. Viewing someone else's
// profile bumps their view counter; viewing your own does not.
func (s *profileService) GetProfile(viewerID, userID uint) (*domain.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 && viewerID != userID {
		if err := s.userRepo.IncrementProfileViews(userID); err != nil {
			return nil, err
		}
		user.ProfileViews++
	}

	exps, err := s.profileRepo.FindExperiences(userID)
	if err != nil {
		return nil, err
	}
	edus, err := s.profileRepo.FindEducations(userID)
	if err != nil {
		return nil, err
	}
	skills, err := s.profileRepo.FindUserSkills(userID)
	if err != nil {
		return nil, err
	}
	postsCount, err := s.postRepo.CountByAuthor(userID)
	if err != nil {
		return nil, err
	}
	connCount, err := s.connRepo.CountAcceptedForUser(userID)
	if err != nil {
		return nil, err
	}

	resp := &domain.ProfileResponse{
		User:             user,
		Experiences:      exps,
		Educations:       edus,
		Skills:           skills,
		PostsCount:       postsCount,
		ConnectionsCount: connCount,
	}
	if user.CompanyID != nil {
		company, err := s.companyRepo.FindByID(*user.CompanyID)
		if err == nil {
			resp.Company = company.ToSummary()
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}
	return resp, nil
}

// UpdateProfile applies the non-nil fields and returns the updated user
func (s *profileService) UpdateProfile(userID uint, req *domain.UpdateProfileRequest) (*domain.User, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Headline != nil {
		fields["headline"] = *req.Headline
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}
	if req.CoverImage != nil {
		fields["cover_image"] = *req.CoverImage
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.CompanyID != nil {
		if _, err := s.companyRepo.FindByID(*req.CompanyID); err != nil {
			return nil, err
		}
		fields["company_id"] = *req.CompanyID
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(userID, fields); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindByID(userID)
}

// SearchUsers pages case-insensitive matches over name, headline and bio
func (s *profileService) SearchUsers(query string, page, limit int) ([]*domain.UserSummary, *common.Pagination, error) {
	if query == "" {
		return nil, nil, common.ErrInvalidInput
	}

	users, total, err := s.userRepo.Search(query, page, limit)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]*domain.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = u.ToSummary()
	}
	return summaries, common.NewPagination(page, limit, total), nil
}

func (s *profileService) AddExperience(userID uint, req *domain.ExperienceRequest) (*domain.Experience, error) {
	exp := &domain.Experience{
		UserID:      userID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsCurrent:   req.IsCurrent,
	}
	if err := s.profileRepo.CreateExperience(exp); err != nil {
		return nil, err
	}
	return exp, nil
}

// UpdateExperience replaces an experience entry. Owner only.
func (s *profileService) UpdateExperience(userID, expID uint, req *domain.ExperienceRequest) (*domain.Experience, error) {
	exp, err := s.profileRepo.FindExperienceByID(expID)
	if err != nil {
		return nil, err
	}
	if exp.UserID != userID {
		return nil, common.ErrForbidden
	}

	fields := map[string]interface{}{
		"title":        req.Title,
		"company_name": req.CompanyName,
		"location":     req.Location,
		"description":  req.Description,
		"start_date":   req.StartDate,
		"end_date":     req.EndDate,
		"is_current":   req.IsCurrent,
	}
	if err := s.profileRepo.UpdateExperience(expID, fields); err != nil {
		return nil, err
	}
	return s.profileRepo.FindExperienceByID(expID)
}

func (s *profileService) DeleteExperience(userID, expID uint) error {
	exp, err := s.profileRepo.FindExperienceByID(expID)
	if err != nil {
		return err
	}
	if exp.UserID != userID {
		return common.ErrForbidden
	}
	return s.profileRepo.DeleteExperience(expID)
}

func (s *profileService) AddEducation(userID uint, req *domain.EducationRequest) (*domain.Education, error) {
	edu := &domain.Education{
		UserID:       userID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := s.profileRepo.CreateEducation(edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (s *profileService) DeleteEducation(userID, eduID uint) error {
	edu, err := s.profileRepo.FindEducationByID(eduID)
	if err != nil {
		return err
	}
	if edu.UserID != userID {
		return common.ErrForbidden
	}
	return s.profileRepo.DeleteEducation(eduID)
}

// AddSkill attaches a skill by name, reusing the shared skill row when one
// exists under any casing. Attaching the same skill twice yields Conflict.
func (s *profileService) AddSkill(userID uint, req *domain.AddSkillRequest) (*domain.UserSkill, error) {
	skill, err := s.profileRepo.FindSkillByNameInsensitive(req.SkillName)
	if errors.Is(err, common.ErrNotFound) {
		skill = &domain.Skill{Name: req.SkillName}
		if cerr := s.profileRepo.CreateSkill(skill); cerr != nil {
			// racing create: another request inserted the name first
			if errors.Is(cerr, common.ErrConflict) {
				skill, err = s.profileRepo.FindSkillByNameInsensitive(req.SkillName)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, cerr
			}
		}
	} else if err != nil {
		return nil, err
	}

	us := &domain.UserSkill{UserID: userID, SkillID: skill.ID}
	if err := s.profileRepo.CreateUserSkill(us); err != nil {
		return nil, err
	}
	us.Skill = skill
	return us, nil
}

func (s *profileService) RemoveSkill(userID, userSkillID uint) error {
	us, err := s.profileRepo.FindUserSkillByID(userSkillID)
	if err != nil {
		return err
	}
	if us.UserID != userID {
		return common.ErrForbidden
	}
	return s.profileRepo.DeleteUserSkill(userSkillID)
}
