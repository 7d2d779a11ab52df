package services

import (
	"context"
	"errors"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"github.com/greenloop/ewaste-rewards-backend/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user management
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// GetAllUsers retrieves users with pagination
func (s *UserService) GetAllUsers(ctx context.Context, page, limit int) ([]*models.User, error) {
	users, err := s.userRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

// CreateUser creates a user on behalf of an admin
func (s *UserService) CreateUser(ctx context.Context, user *models.User, password string) error {
	if res := validation.ValidateUser(user); !res.IsValid {
		return NewValidationError(res)
	}
	_, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}
	user.Password = ""
	return nil
}

// UpdateUser updates a user's profile fields. The points balance is not
// touched here; it only moves through the ledger.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	existing, err := s.userRepo.FindByID(ctx, user.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if user.Email != existing.Email {
		other, err := s.userRepo.FindByEmail(ctx, user.Email)
		if err == nil && other.ID != user.ID {
			return ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
	}

	existing.Email = user.Email
	existing.Name = user.Name
	existing.Role = user.Role
	existing.Status = user.Status
	if res := validation.ValidateUser(existing); !res.IsValid {
		return NewValidationError(res)
	}
	if err := s.userRepo.Update(ctx, existing); err != nil {
		// The pre-check can lose a race against the unique email index
		if errors.Is(err, repositories.ErrConditionFailed) {
			return ErrDuplicateEmail
		}
		return err
	}
	*user = *existing
	user.Password = ""
	return nil
}

// DeleteUser removes a user
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// GetUserCount returns the total number of users
func (s *UserService) GetUserCount(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
