package service

import (
	"context"
	"testing"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/model"
)

func newTestUserService() (*UserService, *memUserStore) {
	users := newMemUserStore()
	auth, _, _, _ := newTestAuthService(testConfig())
	return NewUserService(users, auth), users
}

func TestUserCreateDefaultsToStudentRole(t *testing.T) {
	svc, _ := newTestUserService()

	user, err := svc.Create(context.Background(), "tenant-a", model.CreateUserRequest{
		Name:     "New User",
		Email:    "New.User@school.test",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != model.RoleStudent {
		t.Errorf("default role: got %q, want %q", user.Role, model.RoleStudent)
	}
	if user.Email != "new.user@school.test" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash != "" {
		t.Error("password hash leaked in response")
	}
}

func TestUserCreateRejectsSuperadminRole(t *testing.T) {
	svc, users := newTestUserService()

	_, err := svc.Create(context.Background(), "tenant-a", model.CreateUserRequest{
		Name:     "Escalator",
		Email:    "escalator@school.test",
		Password: "password123",
		Role:     model.RoleSuperAdmin,
	})
	if !apperr.IsKind(err, apperr.KindBadRequest) || apperr.MessageOf(err) != "Invalid role" {
		t.Errorf("expected bad request %q, got %v", "Invalid role", err)
	}
	if len(users.users) != 0 {
		t.Error("no account should be stored")
	}
}

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Create(context.Background(), "tenant-a", model.CreateUserRequest{
		Name:     "Odd Role",
		Email:    "odd@school.test",
		Password: "password123",
		Role:     model.Role("janitor"),
	})
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Errorf("expected bad request, got %v", err)
	}
}

func TestUserListStripsHashes(t *testing.T) {
	svc, _ := newTestUserService()

	for _, email := range []string{"a@school.test", "b@school.test"} {
		if _, err := svc.Create(context.Background(), "tenant-a", model.CreateUserRequest{
			Name:     "User",
			Email:    email,
			Password: "password123",
			Role:     model.RoleTeacher,
		}); err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}

	users, err := svc.List(context.Background(), "tenant-a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Errorf("hash leaked for %s", u.Email)
		}
	}
}
