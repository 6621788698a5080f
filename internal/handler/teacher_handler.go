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

// TeacherHandler handles staff CRUD within the active tenant.
type TeacherHandler struct {
	teacherService *service.TeacherService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(teacherService *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

func teacherListOptions(c *gin.Context) model.TeacherListOptions {
	return model.TeacherListOptions{
		ListOptions: listOptions(c),
		Status:      model.StaffStatus(c.Query("status")),
	}
}

// List godoc
// GET /teachers
func (h *TeacherHandler) List(c *gin.Context) {
	opts := teacherListOptions(c)
	opts.Query = c.Query("q")

	items, pagination, err := h.teacherService.List(c.Request.Context(), middleware.GetTenantID(c), opts)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// Search godoc
// GET /teachers/search?q=...
func (h *TeacherHandler) Search(c *gin.Context) {
	items, pagination, err := h.teacherService.Search(
		c.Request.Context(), middleware.GetTenantID(c), c.Query("q"), teacherListOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// ListByRole godoc
// GET /teachers/role/:role
func (h *TeacherHandler) ListByRole(c *gin.Context) {
	items, pagination, err := h.teacherService.ListByRole(
		c.Request.Context(), middleware.GetTenantID(c),
		model.StaffRole(c.Param("role")), teacherListOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// Create godoc
// POST /teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req model.CreateTeacherRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	teacher, err := h.teacherService.Create(c.Request.Context(), middleware.GetTenantID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Teacher created", gin.H{"teacher": teacher})
}

// Get godoc
// GET /teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid teacher id")
		return
	}

	teacher, err := h.teacherService.GetByID(
		c.Request.Context(), middleware.GetTenantID(c), id, c.Query("include_inactive") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"teacher": teacher})
}

// Update godoc
// PUT /teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid teacher id")
		return
	}

	var req model.UpdateTeacherRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	teacher, err := h.teacherService.Update(c.Request.Context(), middleware.GetTenantID(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Teacher updated", gin.H{"teacher": teacher})
}

// Delete godoc
// DELETE /teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid teacher id")
		return
	}

	teacher, err := h.teacherService.Delete(c.Request.Context(), middleware.GetTenantID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Teacher deleted", gin.H{"teacher": teacher})
}
