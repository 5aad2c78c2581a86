package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/workforce-api/internal/model"
	"github.com/stemsi/workforce-api/internal/response"
	"github.com/stemsi/workforce-api/internal/service"
)

type JobHandler struct {
	jobService service.JobService
}

func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Create godoc
// POST /jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req model.CreateJobRequest
	if !bindOrFail(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), *req.ID, *req.Job)
	if err != nil {
		failFromError(c, "Job", err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

// Get godoc
// GET /jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		failFromError(c, "Job", err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

// Update godoc
// PUT /jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req model.UpdateJobRequest
	if !bindOrFail(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), id, *req.Job)
	if err != nil {
		failFromError(c, "Job", err)
		return
	}
	response.Success(c, http.StatusOK, job)
}

// Delete godoc
// DELETE /jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	job, err := h.jobService.DeleteJob(c.Request.Context(), id)
	if err != nil {
		failFromError(c, "Job", err)
		return
	}
	response.Success(c, http.StatusOK, job)
}
