package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classora/classora-backend/internal/middleware"
	"github.com/classora/classora-backend/internal/model"
	"github.com/classora/classora-backend/internal/response"
	"github.com/classora/classora-backend/internal/service"
	"github.com/classora/classora-backend/internal/validator"
)

// AttendanceHandler handles daily attendance records within the active tenant.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List godoc
// GET /attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	items, pagination, err := h.attendanceService.List(
		c.Request.Context(), middleware.GetTenantID(c), listOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// Create godoc
// POST /attendance
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req model.CreateAttendanceRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	record, err := h.attendanceService.Create(c.Request.Context(), middleware.GetTenantID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Attendance recorded", gin.H{"attendance": record})
}

// Get godoc
// GET /attendance/:id
func (h *AttendanceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid attendance id")
		return
	}

	record, err := h.attendanceService.GetByID(c.Request.Context(), middleware.GetTenantID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"attendance": record})
}

// Update godoc
// PUT /attendance/:id
func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid attendance id")
		return
	}

	var req model.UpdateAttendanceRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	record, err := h.attendanceService.Update(c.Request.Context(), middleware.GetTenantID(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Attendance updated", gin.H{"attendance": record})
}

// Delete godoc
// DELETE /attendance/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid attendance id")
		return
	}

	record, err := h.attendanceService.Delete(c.Request.Context(), middleware.GetTenantID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Attendance deleted", gin.H{"attendance": record})
}
