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

// ClassHandler handles class CRUD within the active tenant.
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

func classListOptions(c *gin.Context) model.ClassListOptions {
	return model.ClassListOptions{
		ListOptions:  listOptions(c),
		AcademicYear: c.Query("academic_year"),
		Query:        c.Query("q"),
	}
}

// List godoc
// GET /classes
func (h *ClassHandler) List(c *gin.Context) {
	items, pagination, err := h.classService.List(
		c.Request.Context(), middleware.GetTenantID(c), classListOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// ListByTeacher godoc
// GET /classes/teacher/:teacherId
func (h *ClassHandler) ListByTeacher(c *gin.Context) {
	teacherID, ok := pathID(c, "teacherId")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid teacher id")
		return
	}

	items, pagination, err := h.classService.ListByTeacher(
		c.Request.Context(), middleware.GetTenantID(c), teacherID, classListOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", listPayload(items, pagination))
}

// Create godoc
// POST /classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req model.CreateClassRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	class, err := h.classService.Create(c.Request.Context(), middleware.GetTenantID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Class created", gin.H{"class": class})
}

// Get godoc
// GET /classes/:id
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid class id")
		return
	}

	class, err := h.classService.GetByID(
		c.Request.Context(), middleware.GetTenantID(c), id, c.Query("include_inactive") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"class": class})
}

// Update godoc
// PUT /classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid class id")
		return
	}

	var req model.UpdateClassRequest
	if msg, ok := validator.Bind(c, &req); !ok {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	class, err := h.classService.Update(c.Request.Context(), middleware.GetTenantID(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Class updated", gin.H{"class": class})
}

// Delete godoc
// DELETE /classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, "Invalid class id")
		return
	}

	class, err := h.classService.Delete(c.Request.Context(), middleware.GetTenantID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Class deleted", gin.H{"class": class})
}
