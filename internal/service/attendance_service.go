package service

import (
	"context"
	"errors"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/model"
)

// AttendanceStore persists attendance records, tenant-scoped throughout.
// Delete is physical: attendance is corrected by replacement, not archived.
type AttendanceStore interface {
	Create(ctx context.Context, record *model.Attendance) error
	List(ctx context.Context, tenantID string, opts model.ListOptions) ([]model.Attendance, int, error)
	GetByID(ctx context.Context, tenantID string, id int) (*model.Attendance, error)
	Update(ctx context.Context, record *model.Attendance) error
	Delete(ctx context.Context, tenantID string, id int) (*model.Attendance, error)
}

// StudentChecker verifies a referenced student exists in the caller's tenant.
type StudentChecker interface {
	StudentExists(ctx context.Context, tenantID string, id int) (bool, error)
}

// AttendanceService handles tenant-scoped attendance CRUD.
type AttendanceService struct {
	attendance AttendanceStore
	students   StudentChecker
	classes    ClassChecker
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendance AttendanceStore, students StudentChecker, classes ClassChecker) *AttendanceService {
	return &AttendanceService{attendance: attendance, students: students, classes: classes}
}

// Create records attendance for one student and date. Both references are
// verified inside the caller's tenant before the write.
func (s *AttendanceService) Create(ctx context.Context, tenantID string, req model.CreateAttendanceRequest) (*model.Attendance, error) {
	if tenantID == "" {
		return nil, apperr.BadRequest("Missing tenant context")
	}

	ok, err := s.students.StudentExists(ctx, tenantID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Student not found")
	}

	ok, err = s.classes.ClassExists(ctx, tenantID, req.ClassID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("Class not found")
	}

	record := &model.Attendance{
		TenantID:  tenantID,
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      req.Date,
		Status:    req.Status,
		Remarks:   req.Remarks,
	}
	if err := s.attendance.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns attendance records for the tenant.
func (s *AttendanceService) List(ctx context.Context, tenantID string, opts model.ListOptions) ([]model.Attendance, model.Pagination, error) {
	if tenantID == "" {
		return nil, model.Pagination{}, apperr.BadRequest("Missing tenant context")
	}

	opts.Normalize()
	items, total, err := s.attendance.List(ctx, tenantID, opts)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return items, model.NewPagination(opts.Page, opts.Limit, total), nil
}

// GetByID fetches one record within the tenant.
func (s *AttendanceService) GetByID(ctx context.Context, tenantID string, id int) (*model.Attendance, error) {
	record, err := s.attendance.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Attendance not found")
		}
		return nil, err
	}
	return record, nil
}

// Update corrects a record's status or remarks.
func (s *AttendanceService) Update(ctx context.Context, tenantID string, id int, req model.UpdateAttendanceRequest) (*model.Attendance, error) {
	record, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Remarks != nil {
		record.Remarks = *req.Remarks
	}

	if err := s.attendance.Update(ctx, record); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Attendance not found")
		}
		return nil, err
	}
	return record, nil
}

// Delete removes a record.
func (s *AttendanceService) Delete(ctx context.Context, tenantID string, id int) (*model.Attendance, error) {
	record, err := s.attendance.Delete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Attendance not found")
		}
		return nil, err
	}
	return record, nil
}
