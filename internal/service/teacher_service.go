package service

import (
	"context"
	"errors"
	"strings"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/model"
)

// TeacherStore persists staff records, tenant-scoped throughout.
type TeacherStore interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	List(ctx context.Context, tenantID string, opts model.TeacherListOptions) ([]model.Teacher, int, error)
	GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Deactivate(ctx context.Context, tenantID string, id int) (*model.Teacher, error)
}

// TeacherService handles tenant-scoped staff CRUD.
type TeacherService struct {
	teachers  TeacherStore
	sequences *SequenceService
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teachers TeacherStore, sequences *SequenceService) *TeacherService {
	return &TeacherService{teachers: teachers, sequences: sequences}
}

// Create adds a staff member, issuing the employee ID here.
func (s *TeacherService) Create(ctx context.Context, tenantID string, req model.CreateTeacherRequest) (*model.Teacher, error) {
	if tenantID == "" {
		return nil, apperr.BadRequest("Missing tenant context")
	}

	employeeID, err := s.sequences.NextEmployeeID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	teacher := &model.Teacher{
		TenantID:     tenantID,
		EmployeeName: strings.TrimSpace(req.EmployeeName),
		EmployeeID:   employeeID,
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		JoiningDate:  req.JoiningDate,
		StaffRole:    req.StaffRole,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Gender:       req.Gender,
		NationalID:   req.NationalID,
		Education:    req.Education,
		Address:      req.Address,
		Status:       model.StaffStatusActive,
		IsActive:     true,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// List returns active staff by default, with optional role/status/q filters.
func (s *TeacherService) List(ctx context.Context, tenantID string, opts model.TeacherListOptions) ([]model.Teacher, model.Pagination, error) {
	if tenantID == "" {
		return nil, model.Pagination{}, apperr.BadRequest("Missing tenant context")
	}

	opts.Normalize()
	items, total, err := s.teachers.List(ctx, tenantID, opts)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return items, model.NewPagination(opts.Page, opts.Limit, total), nil
}

// GetByID fetches an active staff member within the tenant.
func (s *TeacherService) GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, tenantID, id, includeInactive)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Teacher not found")
		}
		return nil, err
	}
	return teacher, nil
}

// Update applies a partial update to a staff member.
func (s *TeacherService) Update(ctx context.Context, tenantID string, id int, req model.UpdateTeacherRequest) (*model.Teacher, error) {
	teacher, err := s.GetByID(ctx, tenantID, id, false)
	if err != nil {
		return nil, err
	}

	if req.EmployeeName != nil {
		teacher.EmployeeName = strings.TrimSpace(*req.EmployeeName)
	}
	if req.MobileNumber != nil {
		teacher.MobileNumber = strings.TrimSpace(*req.MobileNumber)
	}
	if req.JoiningDate != nil {
		teacher.JoiningDate = *req.JoiningDate
	}
	if req.StaffRole != nil {
		teacher.StaffRole = *req.StaffRole
	}
	if req.Email != nil {
		teacher.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Gender != nil {
		teacher.Gender = *req.Gender
	}
	if req.NationalID != nil {
		teacher.NationalID = *req.NationalID
	}
	if req.Education != nil {
		teacher.Education = *req.Education
	}
	if req.Address != nil {
		teacher.Address = *req.Address
	}
	if req.Status != nil {
		teacher.Status = *req.Status
	}

	if err := s.teachers.Update(ctx, teacher); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Teacher not found")
		}
		return nil, err
	}
	return teacher, nil
}

// Delete soft-deletes a staff member and marks the employment status
// Inactive.
func (s *TeacherService) Delete(ctx context.Context, tenantID string, id int) (*model.Teacher, error) {
	teacher, err := s.teachers.Deactivate(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Teacher not found")
		}
		return nil, err
	}
	return teacher, nil
}

// Search lists staff matching q by name, employee ID, mobile, or email.
func (s *TeacherService) Search(ctx context.Context, tenantID, q string, opts model.TeacherListOptions) ([]model.Teacher, model.Pagination, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, model.Pagination{}, apperr.BadRequest("q is required")
	}
	opts.Query = q
	return s.List(ctx, tenantID, opts)
}

// ListByRole lists staff holding one employment role.
func (s *TeacherService) ListByRole(ctx context.Context, tenantID string, role model.StaffRole, opts model.TeacherListOptions) ([]model.Teacher, model.Pagination, error) {
	if !role.Valid() {
		return nil, model.Pagination{}, apperr.BadRequest("Invalid staff role")
	}
	opts.StaffRole = role
	return s.List(ctx, tenantID, opts)
}
