package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classora/classora-backend/internal/model"
	"github.com/classora/classora-backend/internal/service"
)

// ClassRepository handles class data access.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

const classColumns = `id, tenant_id, class_name, COALESCE(class_code, ''), COALESCE(description, ''),
	COALESCE(academic_year, ''), COALESCE(max_students, 0), class_teacher_id, is_active, created_at, updated_at`

func scanClass(row pgx.Row) (*model.Class, error) {
	c := &model.Class{}
	err := row.Scan(&c.ID, &c.TenantID, &c.ClassName, &c.ClassCode, &c.Description,
		&c.AcademicYear, &c.MaxStudents, &c.ClassTeacherID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create inserts a new class.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (tenant_id, class_name, class_code, description, academic_year,
			max_students, class_teacher_id, is_active)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, 0), $7, $8)
		 RETURNING id, created_at, updated_at`,
		c.TenantID, c.ClassName, c.ClassCode, c.Description, c.AcademicYear,
		c.MaxStudents, c.ClassTeacherID, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// List retrieves classes with pagination and optional filters.
func (r *ClassRepository) List(ctx context.Context, tenantID string, opts model.ClassListOptions) ([]model.Class, int, error) {
	where := ` WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if !opts.IncludeInactive {
		where += ` AND is_active = TRUE`
	}
	if opts.AcademicYear != "" {
		args = append(args, opts.AcademicYear)
		where += ` AND academic_year = $` + strconv.Itoa(len(args))
	}
	if opts.ClassTeacherID > 0 {
		args = append(args, opts.ClassTeacherID)
		where += ` AND class_teacher_id = $` + strconv.Itoa(len(args))
	}
	if opts.Query != "" {
		args = append(args, "%"+opts.Query+"%")
		where += ` AND class_name ILIKE $` + strconv.Itoa(len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM classes`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := orderClause(opts.ListOptions, map[string]string{
		"class_name": "class_name",
		"created_at": "created_at",
	}, "class_name")
	if opts.SortBy == "" {
		order = " ORDER BY class_name ASC"
	}

	args = append(args, opts.Limit, opts.Offset())
	query := `SELECT ` + classColumns + ` FROM classes` + where + order +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.TenantID, &c.ClassName, &c.ClassCode, &c.Description,
			&c.AcademicYear, &c.MaxStudents, &c.ClassTeacherID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		classes = append(classes, c)
	}
	return classes, total, rows.Err()
}

// GetByID retrieves a class by ID within a tenant.
func (r *ClassRepository) GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE tenant_id = $1 AND id = $2`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	return scanClass(r.pool.QueryRow(ctx, query, tenantID, id))
}

// Update modifies a class's mutable fields.
func (r *ClassRepository) Update(ctx context.Context, c *model.Class) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE classes SET class_name = $1, class_code = NULLIF($2, ''), description = NULLIF($3, ''),
			academic_year = NULLIF($4, ''), max_students = NULLIF($5, 0), class_teacher_id = $6,
			updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = $7 AND id = $8 AND is_active = TRUE`,
		c.ClassName, c.ClassCode, c.Description,
		c.AcademicYear, c.MaxStudents, c.ClassTeacherID,
		c.TenantID, c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// Deactivate soft-deletes a class and returns the updated row.
func (r *ClassRepository) Deactivate(ctx context.Context, tenantID string, id int) (*model.Class, error) {
	return scanClass(r.pool.QueryRow(ctx,
		`UPDATE classes SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = $1 AND id = $2 AND is_active = TRUE
		 RETURNING `+classColumns,
		tenantID, id,
	))
}

// ClassExists reports whether an active class exists within a tenant.
func (r *ClassRepository) ClassExists(ctx context.Context, tenantID string, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM classes WHERE tenant_id = $1 AND id = $2 AND is_active = TRUE)`,
		tenantID, id,
	).Scan(&exists)
	return exists, err
}
