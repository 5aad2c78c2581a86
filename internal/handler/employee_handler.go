package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/workforce-api/internal/model"
	"github.com/stemsi/workforce-api/internal/response"
	"github.com/stemsi/workforce-api/internal/service"
)

// EmployeeHandler serves /employees.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create godoc
// POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if !bindOrFail(c, &req) {
		return
	}

	employee := &model.Employee{
		ID:           *req.ID,
		Name:         *req.Name,
		Datetime:     *req.Datetime,
		DepartmentID: *req.DepartmentID,
		JobID:        *req.JobID,
	}
	if err := h.employeeService.CreateEmployee(c.Request.Context(), employee); err != nil {
		failFromError(c, "Employee", err)
		return
	}
	response.Success(c, http.StatusOK, employee)
}

// Get godoc
// GET /employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		failFromError(c, "Employee", err)
		return
	}
	response.Success(c, http.StatusOK, employee)
}

// Update godoc
// PUT /employees/:id
// Every mutable field is required; there is no partial update.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req model.UpdateEmployeeRequest
	if !bindOrFail(c, &req) {
		return
	}

	employee := &model.Employee{
		ID:           id,
		Name:         *req.Name,
		Datetime:     *req.Datetime,
		DepartmentID: *req.DepartmentID,
		JobID:        *req.JobID,
	}
	if err := h.employeeService.UpdateEmployee(c.Request.Context(), employee); err != nil {
		failFromError(c, "Employee", err)
		return
	}
	response.Success(c, http.StatusOK, employee)
}

// Delete godoc
// DELETE /employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		failFromError(c, "Employee", err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Employee deleted."})
}
