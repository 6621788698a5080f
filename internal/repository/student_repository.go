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

// StudentRepository handles student data access. Every statement conjoins the
// tenant filter with the row's own identifier.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, tenant_id, student_name, registration_no, admission_date, class_id,
	mobile_number, date_of_birth, COALESCE(gender, ''), COALESCE(address, ''),
	COALESCE(father_name, ''), COALESCE(mother_name, ''), COALESCE(guardian_mobile, ''),
	COALESCE(notes, ''), is_active, created_at, updated_at`

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.TenantID, &s.StudentName, &s.RegistrationNo, &s.AdmissionDate, &s.ClassID,
		&s.MobileNumber, &s.DateOfBirth, &s.Gender, &s.Address,
		&s.FatherName, &s.MotherName, &s.GuardianMobile,
		&s.Notes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (tenant_id, student_name, registration_no, admission_date, class_id,
			mobile_number, date_of_birth, gender, address, father_name, mother_name,
			guardian_mobile, notes, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''),
			NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''), $14)
		 RETURNING id, created_at, updated_at`,
		s.TenantID, s.StudentName, s.RegistrationNo, s.AdmissionDate, s.ClassID,
		s.MobileNumber, s.DateOfBirth, string(s.Gender), s.Address, s.FatherName, s.MotherName,
		s.GuardianMobile, s.Notes, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// List retrieves students with pagination and optional class/search filters.
func (r *StudentRepository) List(ctx context.Context, tenantID string, opts model.StudentListOptions) ([]model.Student, int, error) {
	where := ` WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if !opts.IncludeInactive {
		where += ` AND is_active = TRUE`
	}
	if opts.ClassID > 0 {
		args = append(args, opts.ClassID)
		where += ` AND class_id = $` + strconv.Itoa(len(args))
	}
	if opts.Query != "" {
		args = append(args, "%"+opts.Query+"%")
		n := strconv.Itoa(len(args))
		where += ` AND (student_name ILIKE $` + n + ` OR registration_no ILIKE $` + n + ` OR mobile_number ILIKE $` + n + `)`
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := orderClause(opts.ListOptions, map[string]string{
		"student_name":   "student_name",
		"admission_date": "admission_date",
		"created_at":     "created_at",
	}, "created_at")

	args = append(args, opts.Limit, opts.Offset())
	query := `SELECT ` + studentColumns + ` FROM students` + where + order +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.TenantID, &s.StudentName, &s.RegistrationNo, &s.AdmissionDate, &s.ClassID,
			&s.MobileNumber, &s.DateOfBirth, &s.Gender, &s.Address,
			&s.FatherName, &s.MotherName, &s.GuardianMobile,
			&s.Notes, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// GetByID retrieves a student by ID within a tenant.
func (r *StudentRepository) GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE tenant_id = $1 AND id = $2`
	if !includeInactive {
		query += ` AND is_active = TRUE`
	}
	return scanStudent(r.pool.QueryRow(ctx, query, tenantID, id))
}

// Update modifies a student's mutable fields. The registration number and
// tenant are never touched.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET student_name = $1, admission_date = $2, class_id = $3,
			mobile_number = $4, date_of_birth = $5, gender = NULLIF($6, ''),
			address = NULLIF($7, ''), father_name = NULLIF($8, ''), mother_name = NULLIF($9, ''),
			guardian_mobile = NULLIF($10, ''), notes = NULLIF($11, ''), updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = $12 AND id = $13 AND is_active = TRUE`,
		s.StudentName, s.AdmissionDate, s.ClassID,
		s.MobileNumber, s.DateOfBirth, string(s.Gender),
		s.Address, s.FatherName, s.MotherName,
		s.GuardianMobile, s.Notes, s.TenantID, s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// Deactivate soft-deletes a student and returns the updated row.
func (r *StudentRepository) Deactivate(ctx context.Context, tenantID string, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`UPDATE students SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = $1 AND id = $2 AND is_active = TRUE
		 RETURNING `+studentColumns,
		tenantID, id,
	))
}

// StudentExists reports whether an active student exists within a tenant.
func (r *StudentRepository) StudentExists(ctx context.Context, tenantID string, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE tenant_id = $1 AND id = $2 AND is_active = TRUE)`,
		tenantID, id,
	).Scan(&exists)
	return exists, err
}
