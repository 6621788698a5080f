package model

import "time"

// Role is the coarse permission label carried in the token.
type Role string

const (
	RoleSuperAdmin  Role = "superadmin"
	RoleSchoolAdmin Role = "schooladmin"
	RoleTeacher     Role = "teacher"
	RoleStudent     Role = "student"
)

// Valid reports whether the role is one of the known labels.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleSchoolAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is an authenticatable account scoped to a tenant. The same email may
// exist under different tenants but never twice under the same one.
type User struct {
	ID           int       `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserRequest is the payload for creating an account inside a tenant.
type CreateUserRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	Email        string `json:"email" binding:"required,email,max=255"`
	Password     string `json:"password" binding:"required,min=8,max=128"`
	Role         Role   `json:"role" binding:"omitempty,oneof=schooladmin teacher student"`
	ProfileImage string `json:"profile_image" binding:"omitempty,max=500"`
}

// LoginRequest is the payload for authentication. Exactly one of tenant_id or
// tenant_slug must be present; the slug is resolved before the user lookup.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email,max=255"`
	Password   string `json:"password" binding:"required,min=1,max=128"`
	TenantID   string `json:"tenant_id" binding:"omitempty,max=64"`
	TenantSlug string `json:"tenant_slug" binding:"omitempty,max=100"`
}
