package model

import "time"

// AttendanceStatus marks a student's presence for one day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Attendance is one student's record for one date. At most one record exists
// per (tenant, student, date).
type Attendance struct {
	ID        int              `json:"id"`
	TenantID  string           `json:"tenant_id"`
	StudentID int              `json:"student_id"`
	ClassID   int              `json:"class_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Remarks   string           `json:"remarks,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CreateAttendanceRequest is the payload for recording attendance.
type CreateAttendanceRequest struct {
	StudentID int              `json:"student_id" binding:"required,min=1"`
	ClassID   int              `json:"class_id" binding:"required,min=1"`
	Date      time.Time        `json:"date" binding:"required"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=present absent late"`
	Remarks   string           `json:"remarks" binding:"omitempty,max=500"`
}

// UpdateAttendanceRequest is the payload for correcting a record.
type UpdateAttendanceRequest struct {
	Status  *AttendanceStatus `json:"status" binding:"omitempty,oneof=present absent late"`
	Remarks *string           `json:"remarks" binding:"omitempty,max=500"`
}
