package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classora/classora-backend/internal/model"
	"github.com/classora/classora-backend/internal/service"
)

// TenantRepository handles tenant data access. Tenants themselves are the one
// table without a tenant filter: they are the scope, not scoped.
type TenantRepository struct {
	pool *pgxpool.Pool
}

// NewTenantRepository creates a new TenantRepository.
func NewTenantRepository(pool *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{pool: pool}
}

// GetBySlug retrieves a tenant by its unique slug.
func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	t := &model.Tenant{}
	var ownerUserID *int
	err := r.pool.QueryRow(ctx,
		`SELECT id, tenant_id, name, slug, owner_user_id, created_at, updated_at
		 FROM tenants WHERE slug = $1`, slug,
	).Scan(&t.ID, &t.TenantID, &t.Name, &t.Slug, &ownerUserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	if ownerUserID != nil {
		t.OwnerUserID = *ownerUserID
	}
	return t, nil
}

// Create inserts a new tenant.
func (r *TenantRepository) Create(ctx context.Context, t *model.Tenant) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO tenants (tenant_id, name, slug)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		t.TenantID, t.Name, t.Slug,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// SetOwner links the owner account created during registration.
func (r *TenantRepository) SetOwner(ctx context.Context, tenantID string, ownerUserID int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tenants SET owner_user_id = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = $2`,
		ownerUserID, tenantID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
