package service

import (
	"fmt"

	"github.com/antera/antera-backend/internal/common"
	"github.com/antera/antera-backend/internal/domain"
	"github.com/antera/antera-backend/internal/repository"
	"github.com/antera/antera-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost factor used for all stored credentials
const bcryptCost = 10

// AuthService authentication business logic
type AuthService interface {
	Register(req *domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(req *domain.LoginRequest) (*domain.AuthResponse, error)
	ListUsers() ([]*domain.UserSummary, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user account and issues a token.
// The email unique index backs up the existence check, so a racing
// duplicate registration still fails with Conflict.
func (s *authService) Register(req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, common.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &domain.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and issues a fresh token.
// Unknown email and wrong password produce the same error.
func (s *authService) Login(req *domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &domain.AuthResponse{Token: token, User: user}, nil
}

// ListUsers returns every user's public summary
func (s *authService) ListUsers() ([]*domain.UserSummary, error) {
	return s.userRepo.FindAllSummaries()
}
