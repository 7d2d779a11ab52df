package services

import (
	"context"
	"errors"

	"github.com/greenloop/ewaste-rewards-backend/internal/config"
	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"github.com/greenloop/ewaste-rewards-backend/internal/utils"
	"github.com/greenloop/ewaste-rewards-backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register creates a customer account with zero points and returns a session token
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	user := &models.User{
		Email:  req.Email,
		Name:   req.Name,
		Role:   models.RoleCustomer,
		Points: 0,
		Status: models.UserStatusActive,
	}
	if res := validation.ValidateUser(user); !res.IsValid {
		return nil, NewValidationError(res)
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, s.cfg)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and returns a session token
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == models.UserStatusSuspended {
		return nil, ErrAccountSuspended
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, s.cfg)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &models.AuthResponse{Token: token, User: user}, nil
}
