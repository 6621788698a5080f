package model

import "time"

// StaffRole is the employment role of a staff member, unrelated to the auth
// role carried in tokens.
type StaffRole string

const (
	StaffRoleTeacher    StaffRole = "Teacher"
	StaffRoleAdmin      StaffRole = "Admin"
	StaffRoleAccountant StaffRole = "Accountant"
	StaffRolePrincipal  StaffRole = "Principal"
	StaffRoleClerk      StaffRole = "Clerk"
	StaffRoleOther      StaffRole = "Other"
)

// Valid reports whether the staff role is a known value.
func (r StaffRole) Valid() bool {
	switch r {
	case StaffRoleTeacher, StaffRoleAdmin, StaffRoleAccountant,
		StaffRolePrincipal, StaffRoleClerk, StaffRoleOther:
		return true
	}
	return false
}

// StaffStatus is the employment status of a staff member.
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "Active"
	StaffStatusInactive StaffStatus = "Inactive"
	StaffStatusOnLeave  StaffStatus = "On Leave"
)

// Teacher is a tenant-owned staff record. EmployeeID is assigned by the
// sequence service at creation and immutable afterwards.
type Teacher struct {
	ID           int         `json:"id"`
	TenantID     string      `json:"tenant_id"`
	EmployeeName string      `json:"employee_name"`
	EmployeeID   string      `json:"employee_id"`
	MobileNumber string      `json:"mobile_number"`
	JoiningDate  time.Time   `json:"joining_date"`
	StaffRole    StaffRole   `json:"staff_role"`
	Email        string      `json:"email,omitempty"`
	Gender       Gender      `json:"gender,omitempty"`
	NationalID   string      `json:"national_id,omitempty"`
	Education    string      `json:"education,omitempty"`
	Address      string      `json:"address,omitempty"`
	Status       StaffStatus `json:"status"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// CreateTeacherRequest is the payload for adding a staff member.
type CreateTeacherRequest struct {
	EmployeeName string    `json:"employee_name" binding:"required,min=2,max=150"`
	MobileNumber string    `json:"mobile_number" binding:"required,min=5,max=20"`
	JoiningDate  time.Time `json:"joining_date" binding:"required"`
	StaffRole    StaffRole `json:"staff_role" binding:"required,oneof=Teacher Admin Accountant Principal Clerk Other"`
	Email        string    `json:"email" binding:"omitempty,email,max=255"`
	Gender       Gender    `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	NationalID   string    `json:"national_id" binding:"omitempty,max=50"`
	Education    string    `json:"education" binding:"omitempty,max=150"`
	Address      string    `json:"address" binding:"omitempty,max=500"`
}

// UpdateTeacherRequest is the payload for updating a staff member.
type UpdateTeacherRequest struct {
	EmployeeName *string      `json:"employee_name" binding:"omitempty,min=2,max=150"`
	MobileNumber *string      `json:"mobile_number" binding:"omitempty,min=5,max=20"`
	JoiningDate  *time.Time   `json:"joining_date" binding:"omitempty"`
	StaffRole    *StaffRole   `json:"staff_role" binding:"omitempty,oneof=Teacher Admin Accountant Principal Clerk Other"`
	Email        *string      `json:"email" binding:"omitempty,email,max=255"`
	Gender       *Gender      `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	NationalID   *string      `json:"national_id" binding:"omitempty,max=50"`
	Education    *string      `json:"education" binding:"omitempty,max=150"`
	Address      *string      `json:"address" binding:"omitempty,max=500"`
	Status       *StaffStatus `json:"status" binding:"omitempty,oneof=Active Inactive 'On Leave'"`
}

// TeacherListOptions are tenant-internal filter refinements for listing staff.
type TeacherListOptions struct {
	ListOptions
	StaffRole StaffRole
	Status    StaffStatus
	Query     string
}
