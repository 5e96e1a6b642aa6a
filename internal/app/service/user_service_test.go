package service

import (
	"context"
	"errors"
	"testing"

	"bus_safety/internal/common"
	"bus_safety/internal/domain/model"
	"bus_safety/internal/domain/repository"

	"github.com/go-playground/validator/v10"
)

func newUserFixture(t *testing.T) (*UserService, *AuthService, *model.User) {
	t.Helper()
	userRepo := repository.NewSQLiteUserRepository(newTestDB(t))
	authSvc := NewAuthService(userRepo, validator.New())
	user, err := authSvc.Signup(context.Background(), SignupRequest{
		Name:     "Ada",
		Email:    "a@x.com",
		Password: "pw1",
		Role:     model.RolePassenger,
	})
	if err != nil {
		t.Fatalf("fixture signup: %v", err)
	}
	return NewUserService(userRepo), authSvc, user
}

func TestGetUnknownUser(t *testing.T) {
	svc, _, _ := newUserFixture(t)
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfileName(t *testing.T) {
	svc, authSvc, user := newUserFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{Name: "Grace"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Grace" {
		t.Errorf("name = %q, want Grace", updated.Name)
	}

	// Password untouched.
	if _, err := authSvc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Errorf("old password should still work: %v", err)
	}
}

func TestUpdateProfilePassword(t *testing.T) {
	svc, authSvc, user := newUserFixture(t)
	ctx := context.Background()

	if _, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{Password: "pw2"}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if _, err := authSvc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "pw2"}); err != nil {
		t.Errorf("new password should log in: %v", err)
	}
	if _, err := authSvc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "pw1"}); !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("old password must stop working, got %v", err)
	}
}

func TestUpdateProfileBlankFieldsKeepCurrent(t *testing.T) {
	svc, authSvc, user := newUserFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{Name: "  ", Password: "  "})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Ada" {
		t.Errorf("blank name must keep the current one, got %q", updated.Name)
	}
	if _, err := authSvc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Errorf("blank password must keep the current hash: %v", err)
	}
}

func TestListAllNewestFirst(t *testing.T) {
	svc, authSvc, _ := newUserFixture(t)
	ctx := context.Background()

	if _, err := authSvc.Signup(ctx, SignupRequest{Email: "b@x.com", Password: "pw1", Role: model.RoleDriver}); err != nil {
		t.Fatalf("second signup: %v", err)
	}

	users, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Email != "b@x.com" {
		t.Errorf("most recent signup should come first, got %q", users[0].Email)
	}
}
