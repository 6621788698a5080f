package model

import "time"

// Tenant is an isolated school. TenantID is the opaque identifier every
// scoped row carries; it is distinct from the storage primary key so it stays
// stable across storage migrations, and it never changes once assigned.
type Tenant struct {
	ID          int       `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	OwnerUserID int       `json:"owner_user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RegisterTenantRequest is the payload for self-service tenant registration.
type RegisterTenantRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=150"`
	Slug          string `json:"slug" binding:"omitempty,max=100"`
	OwnerName     string `json:"owner_name" binding:"required,min=2,max=100"`
	OwnerEmail    string `json:"owner_email" binding:"required,email,max=255"`
	OwnerPassword string `json:"owner_password" binding:"required,min=8,max=128"`
}

// RegisterTenantResponse is returned after successful registration.
type RegisterTenantResponse struct {
	Tenant *Tenant `json:"tenant"`
	Owner  *User   `json:"owner"`
}
