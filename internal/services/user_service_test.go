package services

import (
	"context"
	"errors"
	"testing"

	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func storedUser(id primitive.ObjectID, email string) *models.User {
	return &models.User{
		ID:     id,
		Email:  email,
		Name:   "Jo",
		Role:   models.RoleCustomer,
		Status: models.UserStatusActive,
	}
}

func TestUpdateUserRejectsDuplicateEmail(t *testing.T) {
	userID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	userRepo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return storedUser(userID, "jo@example.com"), nil
		},
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return storedUser(otherID, email), nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			t.Error("Update called for an email already in use")
			return nil
		},
	}
	service := NewUserService(userRepo)

	update := storedUser(userID, "taken@example.com")
	if err := service.UpdateUser(context.Background(), update); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("UpdateUser error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUpdateUserDuplicateEmailRace(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return storedUser(userID, "jo@example.com"), nil
		},
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, repositories.ErrNotFound
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			return repositories.ErrConditionFailed
		},
	}
	service := NewUserService(userRepo)

	update := storedUser(userID, "taken@example.com")
	if err := service.UpdateUser(context.Background(), update); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("UpdateUser error = %v, want ErrDuplicateEmail", err)
	}
}

func TestUpdateUserKeepingEmailSkipsLookup(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := &mockUserRepo{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return storedUser(userID, "jo@example.com"), nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			return nil
		},
	}
	service := NewUserService(userRepo)

	update := storedUser(userID, "jo@example.com")
	update.Name = "Jo Renamed"
	if err := service.UpdateUser(context.Background(), update); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if update.Name != "Jo Renamed" {
		t.Errorf("name = %q, want %q", update.Name, "Jo Renamed")
	}
	if update.Password != "" {
		t.Error("password leaked in response")
	}
}
