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

// TeacherRepository handles staff data access.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

const teacherColumns = `id, tenant_id, employee_name, employee_id, mobile_number, joining_date,
	staff_role, COALESCE(email, ''), COALESCE(gender, ''), COALESCE(national_id, ''),
	COALESCE(education, ''), COALESCE(address, ''), status, is_active, created_at, updated_at`

func scanTeacher(row pgx.Row) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := row.Scan(&t.ID, &t.TenantID, &t.EmployeeName, &t.EmployeeID, &t.MobileNumber, &t.JoiningDate,
		&t.StaffRole, &t.Email, &t.Gender, &t.NationalID,
		&t.Education, &t.Address, &t.Status, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a new staff member.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO teachers (tenant_id, employee_name, employee_id, mobile_number, joining_date,
			staff_role, email, gender, national_id, education, address, status, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''),
			NULLIF($10, ''), NULLIF($11, ''), $12, $13)
		 RETURNING id, created_at, updated_at`,
		t.TenantID, t.EmployeeName, t.EmployeeID, t.MobileNumber, t.JoiningDate,
		t.StaffRole, t.Email, string(t.Gender), t.NationalID, t.Education, t.Address, t.Status, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// List retrieves staff with pagination and optional role/status/search filters.
func (r *TeacherRepository) List(ctx context.Context, tenantID string, opts model.TeacherListOptions) ([]model.Teacher, int, error) {
	where := ` WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if !opts.IncludeInactive {
		where += ` AND is_active = TRUE`
	}
	if opts.StaffRole != "" {
		args = append(args, opts.StaffRole)
		where += ` AND staff_role = $` + strconv.Itoa(len(args))
	}
	if opts.Status != "" {
		args = append(args, opts.Status)
		where += ` AND status = $` + strconv.Itoa(len(args))
	}
	if opts.Query != "" {
		args = append(args, "%"+opts.Query+"%")
		n := strconv.Itoa(len(args))
		where += ` AND (employee_name ILIKE $` + n + ` OR employee_id ILIKE $` + n +
			` OR mobile_number ILIKE $` + n + ` OR email ILIKE $` + n + `)`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := orderClause(opts.ListOptions, map[string]string{
		"employee_name": "employee_name",
		"joining_date":  "joining_date",
		"created_at":    "created_at",
	}, "created_at")

	args = append(args, opts.Limit, opts.Offset())
	query := `SELECT ` + teacherColumns + ` FROM teachers` + where + order +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.TenantID, &t.EmployeeName, &t.EmployeeID, &t.MobileNumber, &t.JoiningDate,
			&t.StaffRole, &t.Email, &t.Gender, &t.NationalID,
			&t.Education, &t.Address, &t.Status, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		teachers = append(teachers, t)
	}
	return teachers, total, rows.Err()
}

// GetByID retrieves a staff member by ID within a tenant.
func (r *TeacherRepository) GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE tenant_id = $1 AND id = $2`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	return scanTeacher(r.pool.QueryRow(ctx, query, tenantID, id))
}

// Update modifies a staff member's mutable fields. Employee ID and tenant are
// never touched.
func (r *TeacherRepository) Update(ctx context.Context, t *model.Teacher) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE teachers SET employee_name = $1, mobile_number = $2, joining_date = $3,
			staff_role = $4, email = NULLIF($5, ''), gender = NULLIF($6, ''),
			national_id = NULLIF($7, ''), education = NULLIF($8, ''), address = NULLIF($9, ''),
			status = $10, updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = $11 AND id = $12 AND is_active = TRUE`,
		t.EmployeeName, t.MobileNumber, t.JoiningDate,
		t.StaffRole, t.Email, string(t.Gender),
		t.NationalID, t.Education, t.Address,
		t.Status, t.TenantID, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// Deactivate soft-deletes a staff member and marks the employment inactive.
func (r *TeacherRepository) Deactivate(ctx context.Context, tenantID string, id int) (*model.Teacher, error) {
	return scanTeacher(r.pool.QueryRow(ctx,
		`UPDATE teachers SET is_active = FALSE, status = 'Inactive', updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = $1 AND id = $2 AND is_active = TRUE
		 RETURNING `+teacherColumns,
		tenantID, id,
	))
}

// TeacherExists reports whether an active staff member exists within a tenant.
func (r *TeacherRepository) TeacherExists(ctx context.Context, tenantID string, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM teachers WHERE tenant_id = $1 AND id = $2 AND is_active = TRUE)`,
		tenantID, id,
	).Scan(&exists)
	return exists, err
}
