package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bus_safety/internal/common"
	"bus_safety/internal/common/security"
	"bus_safety/internal/domain/model"
	"bus_safety/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

func NewAuthService(userRepo repository.UserRepository, validate *validator.Validate) *AuthService {
	return &AuthService{userRepo: userRepo, validate: validate}
}

type SignupRequest struct {
	Name     string `validate:"-"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=passenger driver admin"`
}

type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Signup creates a user with a hashed password. The email is lowercased
// and trimmed before the uniqueness check; a blank name falls back to
// "User".
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		req.Name = "User"
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, err.Error())
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           req.Role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a duplicate email.
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password both map
// to common.ErrUnauthorized so callers cannot tell which field failed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validate.Struct(req); err != nil {
		return nil, common.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}
	return user, nil
}
