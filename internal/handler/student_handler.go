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

// StudentHandler handles student CRUD within the active tenant.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func studentListOptions(c *gin.Context) model.StudentListOptions {
	return model.StudentListOptions{ListOptions: listOptions(c)}
}

// List godoc
// GET /students
func (h *StudentHandler) List(c *gin.Context) {
	opts := studentListOptions(c)
	opts.Query = c.Query("q")

	items, pagination, err := h.studentService.List(c.Request.Context(), middleware.GetTenantID(c), opts)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// Search godoc
// GET /students/search?q=...
func (h *StudentHandler) Search(c *gin.Context) {
	items, pagination, err := h.studentService.Search(
		c.Request.Context(), middleware.GetTenantID(c), c.Query("q"), studentListOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// ListByClass godoc
// GET /students/class/:classId
func (h *StudentHandler) ListByClass(c *gin.Context) {
	classID, ok := pathID(c, "classId")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid class id")
		return
	}

	items, pagination, err := h.studentService.ListByClass(
		c.Request.Context(), middleware.GetTenantID(c), classID, studentListOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// Create godoc
// POST /students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), middleware.GetTenantID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Student created", gin.H{"student": student})
}

// Get godoc
// GET /students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid student id")
		return
	}

	student, err := h.studentService.GetByID(
		c.Request.Context(), middleware.GetTenantID(c), id, c.Query("include_inactive") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"student": student})
}

// Update godoc
// PUT /students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid student id")
		return
	}

	var req model.UpdateStudentRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), middleware.GetTenantID(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Student updated", gin.H{"student": student})
}

// Delete godoc
// DELETE /students/:id
// Soft delete: the record is marked inactive and drops out of default reads.
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid student id")
		return
	}

	student, err := h.studentService.Delete(c.Request.Context(), middleware.GetTenantID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Student deleted", gin.H{"student": student})
}
