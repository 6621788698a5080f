package model

import "time"

// Gender values accepted on student and teacher records.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Student is a tenant-owned enrollment record. RegistrationNo is assigned by
// the sequence service at creation and immutable afterwards.
type Student struct {
	ID             int        `json:"id"`
	TenantID       string     `json:"tenant_id"`
	StudentName    string     `json:"student_name"`
	RegistrationNo string     `json:"registration_no"`
	AdmissionDate  time.Time  `json:"admission_date"`
	ClassID        int        `json:"class_id"`
	MobileNumber   string     `json:"mobile_number"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Gender         Gender     `json:"gender,omitempty"`
	Address        string     `json:"address,omitempty"`
	FatherName     string     `json:"father_name,omitempty"`
	MotherName     string     `json:"mother_name,omitempty"`
	GuardianMobile string     `json:"guardian_mobile,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreateStudentRequest is the payload for enrolling a student. A tenant_id in
// the body is deliberately absent: scoping always comes from the token.
type CreateStudentRequest struct {
	StudentName    string     `json:"student_name" binding:"required,min=2,max=150"`
	AdmissionDate  time.Time  `json:"admission_date" binding:"required"`
	ClassID        int        `json:"class_id" binding:"required,min=1"`
	MobileNumber   string     `json:"mobile_number" binding:"required,min=5,max=20"`
	DateOfBirth    *time.Time `json:"date_of_birth" binding:"omitempty"`
	Gender         Gender     `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Address        string     `json:"address" binding:"omitempty,max=500"`
	FatherName     string     `json:"father_name" binding:"omitempty,max=150"`
	MotherName     string     `json:"mother_name" binding:"omitempty,max=150"`
	GuardianMobile string     `json:"guardian_mobile" binding:"omitempty,max=20"`
	Notes          string     `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateStudentRequest is the payload for updating a student. All fields are
// optional; registration number and tenant are not updatable.
type UpdateStudentRequest struct {
	StudentName    *string    `json:"student_name" binding:"omitempty,min=2,max=150"`
	AdmissionDate  *time.Time `json:"admission_date" binding:"omitempty"`
	ClassID        *int       `json:"class_id" binding:"omitempty,min=1"`
	MobileNumber   *string    `json:"mobile_number" binding:"omitempty,min=5,max=20"`
	DateOfBirth    *time.Time `json:"date_of_birth" binding:"omitempty"`
	Gender         *Gender    `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Address        *string    `json:"address" binding:"omitempty,max=500"`
	FatherName     *string    `json:"father_name" binding:"omitempty,max=150"`
	MotherName     *string    `json:"mother_name" binding:"omitempty,max=150"`
	GuardianMobile *string    `json:"guardian_mobile" binding:"omitempty,max=20"`
	Notes          *string    `json:"notes" binding:"omitempty,max=2000"`
}

// StudentListOptions are tenant-internal filter refinements for listing.
type StudentListOptions struct {
	ListOptions
	ClassID int
	Query   string
}
