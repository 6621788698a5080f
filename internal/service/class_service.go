package service

import (
	"context"
	"errors"
	"strings"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/model"
)

// ClassStore persists classes, tenant-scoped throughout.
type ClassStore interface {
	Create(ctx context.Context, class *model.Class) error
	List(ctx context.Context, tenantID string, opts model.ClassListOptions) ([]model.Class, int, error)
	GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Deactivate(ctx context.Context, tenantID string, id int) (*model.Class, error)
}

// TeacherChecker verifies a referenced teacher exists in the caller's tenant.
type TeacherChecker interface {
	TeacherExists(ctx context.Context, tenantID string, id int) (bool, error)
}

// ClassService handles tenant-scoped class CRUD.
type ClassService struct {
	classes  ClassStore
	teachers TeacherChecker
}

// NewClassService creates a new ClassService.
func NewClassService(classes ClassStore, teachers TeacherChecker) *ClassService {
	return &ClassService{classes: classes, teachers: teachers}
}

func (s *ClassService) ensureTeacher(ctx context.Context, tenantID string, teacherID int) error {
	ok, err := s.teachers.TeacherExists(ctx, tenantID, teacherID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Class teacher not found")
	}
	return nil
}

// Create adds a class after a tenant-scoped check on its class teacher.
func (s *ClassService) Create(ctx context.Context, tenantID string, req model.CreateClassRequest) (*model.Class, error) {
	if tenantID == "" {
		return nil, apperr.BadRequest("Missing tenant context")
	}

	if err := s.ensureTeacher(ctx, tenantID, req.ClassTeacherID); err != nil {
		return nil, err
	}

	class := &model.Class{
		TenantID:       tenantID,
		ClassName:      strings.TrimSpace(req.ClassName),
		ClassCode:      strings.TrimSpace(req.ClassCode),
		Description:    req.Description,
		AcademicYear:   req.AcademicYear,
		MaxStudents:    req.MaxStudents,
		ClassTeacherID: req.ClassTeacherID,
		IsActive:       true,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// List returns active classes by default, with optional filters.
func (s *ClassService) List(ctx context.Context, tenantID string, opts model.ClassListOptions) ([]model.Class, model.Pagination, error) {
	if tenantID == "" {
		return nil, model.Pagination{}, apperr.BadRequest("Missing tenant context")
	}

	opts.Normalize()
	items, total, err := s.classes.List(ctx, tenantID, opts)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return items, model.NewPagination(opts.Page, opts.Limit, total), nil
}

// GetByID fetches an active class within the tenant.
func (s *ClassService) GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Class, error) {
	class, err := s.classes.GetByID(ctx, tenantID, id, includeInactive)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Class not found")
		}
		return nil, err
	}
	return class, nil
}

// Update applies a partial update; teacher reassignment is verified against
// the same tenant first.
func (s *ClassService) Update(ctx context.Context, tenantID string, id int, req model.UpdateClassRequest) (*model.Class, error) {
	class, err := s.GetByID(ctx, tenantID, id, false)
	if err != nil {
		return nil, err
	}

	if req.ClassTeacherID != nil {
		if err := s.ensureTeacher(ctx, tenantID, *req.ClassTeacherID); err != nil {
			return nil, err
		}
		class.ClassTeacherID = *req.ClassTeacherID
	}
	if req.ClassName != nil {
		class.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if req.ClassCode != nil {
		class.ClassCode = strings.TrimSpace(*req.ClassCode)
	}
	if req.Description != nil {
		class.Description = *req.Description
	}
	if req.AcademicYear != nil {
		class.AcademicYear = *req.AcademicYear
	}
	if req.MaxStudents != nil {
		class.MaxStudents = *req.MaxStudents
	}

	if err := s.classes.Update(ctx, class); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Class not found")
		}
		return nil, err
	}
	return class, nil
}

// Delete soft-deletes a class.
func (s *ClassService) Delete(ctx context.Context, tenantID string, id int) (*model.Class, error) {
	class, err := s.classes.Deactivate(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Class not found")
		}
		return nil, err
	}
	return class, nil
}

// ListByTeacher lists a teacher's classes after a tenant-scoped existence
// check on the teacher.
func (s *ClassService) ListByTeacher(ctx context.Context, tenantID string, teacherID int, opts model.ClassListOptions) ([]model.Class, model.Pagination, error) {
	if teacherID < 1 {
		return nil, model.Pagination{}, apperr.BadRequest("Invalid teacher id")
	}
	if err := s.ensureTeacher(ctx, tenantID, teacherID); err != nil {
		return nil, model.Pagination{}, err
	}
	opts.ClassTeacherID = teacherID
	return s.List(ctx, tenantID, opts)
}
