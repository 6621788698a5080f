package service

import (
	"context"
	"errors"
	"strings"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/model"
)

// StudentStore persists students. Every method is tenant-scoped: an ID that
// exists under another tenant behaves exactly like a missing row.
type StudentStore interface {
	Create(ctx context.Context, student *model.Student) error
	List(ctx context.Context, tenantID string, opts model.StudentListOptions) ([]model.Student, int, error)
	GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Deactivate(ctx context.Context, tenantID string, id int) (*model.Student, error)
}

// ClassChecker verifies a referenced class exists in the caller's tenant.
type ClassChecker interface {
	ClassExists(ctx context.Context, tenantID string, id int) (bool, error)
}

// StudentService handles tenant-scoped student CRUD.
type StudentService struct {
	students  StudentStore
	classes   ClassChecker
	sequences *SequenceService
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, classes ClassChecker, sequences *SequenceService) *StudentService {
	return &StudentService{students: students, classes: classes, sequences: sequences}
}

func (s *StudentService) ensureClass(ctx context.Context, tenantID string, classID int) error {
	ok, err := s.classes.ClassExists(ctx, tenantID, classID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("Class not found")
	}
	return nil
}

// Create enrolls a student. The tenant comes from the request context, never
// from the payload, and the registration number is issued here.
func (s *StudentService) Create(ctx context.Context, tenantID string, req model.CreateStudentRequest) (*model.Student, error) {
	if tenantID == "" {
		return nil, apperr.BadRequest("Missing tenant context")
	}

	if err := s.ensureClass(ctx, tenantID, req.ClassID); err != nil {
		return nil, err
	}

	regNo, err := s.sequences.NextRegistrationNo(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		TenantID:       tenantID,
		StudentName:    strings.TrimSpace(req.StudentName),
		RegistrationNo: regNo,
		AdmissionDate:  req.AdmissionDate,
		ClassID:        req.ClassID,
		MobileNumber:   strings.TrimSpace(req.MobileNumber),
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Address:        req.Address,
		FatherName:     req.FatherName,
		MotherName:     req.MotherName,
		GuardianMobile: req.GuardianMobile,
		Notes:          req.Notes,
		IsActive:       true,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// List returns active students by default; IncludeInactive exposes
// soft-deleted rows as well.
func (s *StudentService) List(ctx context.Context, tenantID string, opts model.StudentListOptions) ([]model.Student, model.Pagination, error) {
	if tenantID == "" {
		return nil, model.Pagination{}, apperr.BadRequest("Missing tenant context")
	}

	opts.Normalize()
	items, total, err := s.students.List(ctx, tenantID, opts)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return items, model.NewPagination(opts.Page, opts.Limit, total), nil
}

// GetByID fetches an active student within the tenant.
func (s *StudentService) GetByID(ctx context.Context, tenantID string, id int, includeInactive bool) (*model.Student, error) {
	student, err := s.students.GetByID(ctx, tenantID, id, includeInactive)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Student not found")
		}
		return nil, err
	}
	return student, nil
}

// Update applies a partial update. A class reassignment is verified against
// the same tenant first.
func (s *StudentService) Update(ctx context.Context, tenantID string, id int, req model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.GetByID(ctx, tenantID, id, false)
	if err != nil {
		return nil, err
	}

	if req.ClassID != nil {
		if err := s.ensureClass(ctx, tenantID, *req.ClassID); err != nil {
			return nil, err
		}
		student.ClassID = *req.ClassID
	}
	if req.StudentName != nil {
		student.StudentName = strings.TrimSpace(*req.StudentName)
	}
	if req.AdmissionDate != nil {
		student.AdmissionDate = *req.AdmissionDate
	}
	if req.MobileNumber != nil {
		student.MobileNumber = strings.TrimSpace(*req.MobileNumber)
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.FatherName != nil {
		student.FatherName = *req.FatherName
	}
	if req.MotherName != nil {
		student.MotherName = *req.MotherName
	}
	if req.GuardianMobile != nil {
		student.GuardianMobile = *req.GuardianMobile
	}
	if req.Notes != nil {
		student.Notes = *req.Notes
	}

	if err := s.students.Update(ctx, student); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Student not found")
		}
		return nil, err
	}
	return student, nil
}

// Delete soft-deletes a student.
func (s *StudentService) Delete(ctx context.Context, tenantID string, id int) (*model.Student, error) {
	student, err := s.students.Deactivate(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("Student not found")
		}
		return nil, err
	}
	return student, nil
}

// ListByClass lists students in one class after a tenant-scoped existence
// check on the class itself.
func (s *StudentService) ListByClass(ctx context.Context, tenantID string, classID int, opts model.StudentListOptions) ([]model.Student, model.Pagination, error) {
	if classID < 1 {
		return nil, model.Pagination{}, apperr.BadRequest("Invalid class id")
	}
	if err := s.ensureClass(ctx, tenantID, classID); err != nil {
		return nil, model.Pagination{}, err
	}
	opts.ClassID = classID
	return s.List(ctx, tenantID, opts)
}

// Search lists students matching q by name, registration number, or mobile.
func (s *StudentService) Search(ctx context.Context, tenantID, q string, opts model.StudentListOptions) ([]model.Student, model.Pagination, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, model.Pagination{}, apperr.BadRequest("q is required")
	}
	opts.Query = q
	return s.List(ctx, tenantID, opts)
}
