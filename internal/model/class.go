package model

import "time"

// Class is a tenant-owned class group. ClassTeacherID must reference a
// teacher in the same tenant.
type Class struct {
	ID             int       `json:"id"`
	TenantID       string    `json:"tenant_id"`
	ClassName      string    `json:"class_name"`
	ClassCode      string    `json:"class_code,omitempty"`
	Description    string    `json:"description,omitempty"`
	AcademicYear   string    `json:"academic_year,omitempty"`
	MaxStudents    int       `json:"max_students,omitempty"`
	ClassTeacherID int       `json:"class_teacher_id"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateClassRequest is the payload for creating a class.
type CreateClassRequest struct {
	ClassName      string `json:"class_name" binding:"required,min=1,max=100"`
	ClassCode      string `json:"class_code" binding:"omitempty,max=30"`
	Description    string `json:"description" binding:"omitempty,max=1000"`
	AcademicYear   string `json:"academic_year" binding:"omitempty,max=20"`
	MaxStudents    int    `json:"max_students" binding:"omitempty,min=1"`
	ClassTeacherID int    `json:"class_teacher_id" binding:"required,min=1"`
}

// UpdateClassRequest is the payload for updating a class.
type UpdateClassRequest struct {
	ClassName      *string `json:"class_name" binding:"omitempty,min=1,max=100"`
	ClassCode      *string `json:"class_code" binding:"omitempty,max=30"`
	Description    *string `json:"description" binding:"omitempty,max=1000"`
	AcademicYear   *string `json:"academic_year" binding:"omitempty,max=20"`
	MaxStudents    *int    `json:"max_students" binding:"omitempty,min=1"`
	ClassTeacherID *int    `json:"class_teacher_id" binding:"omitempty,min=1"`
}

// ClassListOptions are tenant-internal filter refinements for listing classes.
type ClassListOptions struct {
	ListOptions
	AcademicYear   string
	ClassTeacherID int
	Query          string
}
