package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/workforce-api/internal/model"
	"github.com/stemsi/workforce-api/internal/response"
	"github.com/stemsi/workforce-api/internal/service"
)

// DepartmentHandler serves /departments.
type DepartmentHandler struct {
	departmentService service.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create godoc
// POST /departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req model.CreateDepartmentRequest
	if !bindOrFail(c, &req) {
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), *req.ID, *req.Department)
	if err != nil {
		failFromError(c, "Department", err)
		return
	}
	response.Success(c, http.StatusOK, department)
}

// Get godoc
// GET /departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	department, err := h.departmentService.GetDepartment(c.Request.Context(), id)
	if err != nil {
		failFromError(c, "Department", err)
		return
	}
	response.Success(c, http.StatusOK, department)
}

// Update godoc
// PUT /departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req model.UpdateDepartmentRequest
	if !bindOrFail(c, &req) {
		return
	}

	department, err := h.departmentService.UpdateDepartment(c.Request.Context(), id, *req.Department)
	if err != nil {
		failFromError(c, "Department", err)
		return
	}
	response.Success(c, http.StatusOK, department)
}

// Delete godoc
// DELETE /departments/:id
// Responds with the deleted department.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	department, err := h.departmentService.DeleteDepartment(c.Request.Context(), id)
	if err != nil {
		failFromError(c, "Department", err)
		return
	}
	response.Success(c, http.StatusOK, department)
}
