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

// AttendanceRepository handles attendance data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

const attendanceColumns = `id, tenant_id, student_id, class_id, date, status, COALESCE(remarks, ''), created_at, updated_at`

func scanAttendance(row pgx.Row) (*model.Attendance, error) {
	a := &model.Attendance{}
	err := row.Scan(&a.ID, &a.TenantID, &a.StudentID, &a.ClassID, &a.Date, &a.Status, &a.Remarks, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new attendance record.
func (r *AttendanceRepository) Create(ctx context.Context, a *model.Attendance) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO attendance (tenant_id, student_id, class_id, date, status, remarks)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		 RETURNING id, created_at, updated_at`,
		a.TenantID, a.StudentID, a.ClassID, a.Date, a.Status, a.Remarks,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// List retrieves attendance records with pagination, newest date first.
func (r *AttendanceRepository) List(ctx context.Context, tenantID string, opts model.ListOptions) ([]model.Attendance, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE tenant_id = $1`, tenantID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	args := []interface{}{tenantID, opts.Limit, opts.Offset()}
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE tenant_id = $1
		 ORDER BY date DESC, id DESC LIMIT $2 OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []model.Attendance
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.TenantID, &a.StudentID, &a.ClassID, &a.Date, &a.Status, &a.Remarks, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		records = append(records, a)
	}
	return records, total, rows.Err()
}

// GetByID retrieves a record by ID within a tenant.
func (r *AttendanceRepository) GetByID(ctx context.Context, tenantID string, id int) (*model.Attendance, error) {
	return scanAttendance(r.pool.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	))
}

// Update modifies a record's status and remarks.
func (r *AttendanceRepository) Update(ctx context.Context, a *model.Attendance) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE attendance SET status = $1, remarks = NULLIF($2, ''), updated_at = CURRENT_TIMESTAMP
		 WHERE tenant_id = $3 AND id = $4`,
		a.Status, a.Remarks, a.TenantID, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// Delete removes a record and returns it.
func (r *AttendanceRepository) Delete(ctx context.Context, tenantID string, id int) (*model.Attendance, error) {
	return scanAttendance(r.pool.QueryRow(ctx,
		`DELETE FROM attendance WHERE tenant_id = $1 AND id = $2
		 RETURNING `+attendanceColumns,
		tenantID, id,
	))
}
