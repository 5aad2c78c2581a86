package model

// Department is an organizational unit. Its ID is supplied by the caller.
type Department struct {
	ID         int    `json:"id" avro:"id"`
	Department string `json:"department" avro:"department"`
}

// CreateDepartmentRequest is the payload for creating a department.
type CreateDepartmentRequest struct {
	ID         *int    `json:"id" binding:"required,min=-2147483648,max=2147483647"`
	Department *string `json:"department" binding:"required"`
}

// UpdateDepartmentRequest is the payload for overwriting a department.
type UpdateDepartmentRequest struct {
	Department *string `json:"department" binding:"required"`
}
