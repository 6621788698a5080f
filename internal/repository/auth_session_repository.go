package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classora/classora-backend/internal/model"
)

// AuthSessionRepository appends login audit records. Append-only: no update
// or delete paths exist.
type AuthSessionRepository struct {
	pool *pgxpool.Pool
}

// NewAuthSessionRepository creates a new AuthSessionRepository.
func NewAuthSessionRepository(pool *pgxpool.Pool) *AuthSessionRepository {
	return &AuthSessionRepository{pool: pool}
}

// Append records a successful login.
func (r *AuthSessionRepository) Append(ctx context.Context, s *model.AuthSession) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO auth_sessions (tenant_id, user_id, ip, user_agent)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		 RETURNING id, created_at`,
		s.TenantID, s.UserID, s.IP, s.UserAgent,
	).Scan(&s.ID, &s.CreatedAt)
}
