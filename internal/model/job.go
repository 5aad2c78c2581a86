package model

// Job is a job title that employees reference.
type Job struct {
	ID  int    `json:"id"`
	Job string `json:"job"`
}

// CreateJobRequest is the payload for creating a job.
type CreateJobRequest struct {
	ID  *int    `json:"id" binding:"required,min=-2147483648,max=2147483647"`
	Job *string `json:"job" binding:"required"`
}

// UpdateJobRequest is the payload for overwriting a job.
type UpdateJobRequest struct {
	Job *string `json:"job" binding:"required"`
}
