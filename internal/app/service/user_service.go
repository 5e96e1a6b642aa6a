package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bus_safety/internal/common/security"
	"bus_safety/internal/domain/model"
	"bus_safety/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UpdateProfileRequest struct {
	Name     string
	Password string
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateProfile applies the non-blank fields of req to the user's record.
// A blank name keeps the current one; a blank password keeps the current
// hash. Changing the password does not require the current one (source
// behavior, kept as-is).
func (s *UserService) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if password := strings.TrimSpace(req.Password); password != "" {
		hashed, err := security.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashed
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListAll returns every user, most-recently-created first.
func (s *UserService) ListAll(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}
