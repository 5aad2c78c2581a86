package model

// Employee is a person on staff. Datetime is stored as given (hire date,
// free form). DepartmentID and JobID are enforced only by the database.
type Employee struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Datetime     string `json:"datetime"`
	DepartmentID int    `json:"department_id"`
	JobID        int    `json:"job_id"`
}

// CreateEmployeeRequest is the payload for hiring an employee.
type CreateEmployeeRequest struct {
	ID           *int    `json:"id" binding:"required,min=-2147483648,max=2147483647"`
	Name         *string `json:"name" binding:"required"`
	Datetime     *string `json:"datetime" binding:"required"`
	DepartmentID *int    `json:"department_id" binding:"required,min=-2147483648,max=2147483647"`
	JobID        *int    `json:"job_id" binding:"required,min=-2147483648,max=2147483647"`
}

// UpdateEmployeeRequest overwrites every mutable employee field.
type UpdateEmployeeRequest struct {
	Name         *string `json:"name" binding:"required"`
	Datetime     *string `json:"datetime" binding:"required"`
	DepartmentID *int    `json:"department_id" binding:"required,min=-2147483648,max=2147483647"`
	JobID        *int    `json:"job_id" binding:"required,min=-2147483648,max=2147483647"`
}
