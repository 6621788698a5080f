package service

import (
	"context"
	"strings"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/model"
)

// UserStore persists accounts inside a tenant.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context, tenantID string) ([]model.User, error)
}

// UserService handles account management inside a tenant.
type UserService struct {
	users  UserStore
	hasher PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, hasher PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Create adds an account under the active tenant. Defaults to the student
// role when none is given, matching registration-era behavior.
func (s *UserService) Create(ctx context.Context, tenantID string, req model.CreateUserRequest) (*model.User, error) {
	if tenantID == "" {
		return nil, apperr.BadRequest("Missing tenant context")
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	// Superadmin accounts are provisioned out of band, never through the API.
	if role == model.RoleSuperAdmin || !role.Valid() {
		return nil, apperr.BadRequest("Invalid role")
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		TenantID:     tenantID,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		ProfileImage: req.ProfileImage,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// List returns the tenant's accounts with password hashes stripped.
func (s *UserService) List(ctx context.Context, tenantID string) ([]model.User, error) {
	if tenantID == "" {
		return nil, apperr.BadRequest("Missing tenant context")
	}

	users, err := s.users.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}
