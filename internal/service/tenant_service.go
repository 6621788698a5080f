package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/model"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a name into a lowercase, hyphenated, URL-safe slug.
func Slugify(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// TenantStore persists tenants.
type TenantStore interface {
	GetBySlug(ctx context.Context, slug string) (*model.Tenant, error)
	Create(ctx context.Context, tenant *model.Tenant) error
	SetOwner(ctx context.Context, tenantID string, ownerUserID int) error
}

// OwnerStore is the user persistence the registration flow needs. The email
// existence check is deliberately global: no tenant context exists yet.
type OwnerStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
}

// PasswordHasher is the one-way function used for owner passwords.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// TenantService handles tenant registration.
type TenantService struct {
	tenants TenantStore
	users   OwnerStore
	hasher  PasswordHasher
}

// NewTenantService creates a new TenantService.
func NewTenantService(tenants TenantStore, users OwnerStore, hasher PasswordHasher) *TenantService {
	return &TenantService{tenants: tenants, users: users, hasher: hasher}
}

// Register creates a tenant and its owner account in one flow. The owner is
// created with role schooladmin under a freshly generated tenant ID.
func (s *TenantService) Register(ctx context.Context, req model.RegisterTenantRequest) (*model.RegisterTenantResponse, error) {
	if req.Name == "" || req.OwnerName == "" || req.OwnerEmail == "" || req.OwnerPassword == "" {
		return nil, apperr.BadRequest("Missing required fields")
	}

	email := strings.ToLower(req.OwnerEmail)
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Email is already in use")
	}

	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return nil, apperr.BadRequest("Cannot derive a slug from the tenant name")
	}

	if _, err := s.tenants.GetBySlug(ctx, slug); err == nil {
		return nil, apperr.Conflict("Tenant slug already exists")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	tenant := &model.Tenant{
		TenantID: uuid.New().String(),
		Name:     strings.TrimSpace(req.Name),
		Slug:     slug,
	}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashPassword(req.OwnerPassword)
	if err != nil {
		return nil, err
	}

	owner := &model.User{
		TenantID:     tenant.TenantID,
		Name:         strings.TrimSpace(req.OwnerName),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleSchoolAdmin,
	}
	if err := s.users.Create(ctx, owner); err != nil {
		return nil, err
	}

	if err := s.tenants.SetOwner(ctx, tenant.TenantID, owner.ID); err != nil {
		return nil, err
	}
	tenant.OwnerUserID = owner.ID

	owner.PasswordHash = ""
	return &model.RegisterTenantResponse{Tenant: tenant, Owner: owner}, nil
}
