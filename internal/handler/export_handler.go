package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/workforce-api/internal/export"
	"github.com/stemsi/workforce-api/internal/model"
	"github.com/stemsi/workforce-api/internal/repository"
	"github.com/stemsi/workforce-api/internal/response"
)

// Exporter is the export surface the handler drives.
type Exporter interface {
	ExportCSV(ctx context.Context, table string) (*model.ExportResult, error)
	ExportAvro(ctx context.Context) (*model.ExportResult, error)
	LastRuns(ctx context.Context) (map[model.ExportFormat]*model.ExportResult, error)
}

// ExportHandler serves the table export endpoints.
type ExportHandler struct {
	exporter Exporter
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exporter Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// CSV godoc
// GET /get_csv_db?table=department
func (h *ExportHandler) CSV(c *gin.Context) {
	result, err := h.exporter.ExportCSV(c.Request.Context(), c.Query("table"))
	if err != nil {
		failExport(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Avro godoc
// GET /avro
func (h *ExportHandler) Avro(c *gin.Context) {
	result, err := h.exporter.ExportAvro(c.Request.Context())
	if err != nil {
		failExport(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Status godoc
// GET /exports/status
func (h *ExportHandler) Status(c *gin.Context) {
	runs, err := h.exporter.LastRuns(c.Request.Context())
	if err != nil {
		failExport(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exports": runs})
}

// failExport maps export errors; anything not in the shared table is an
// export failure rather than a generic internal error.
func failExport(c *gin.Context, err error) {
	if errors.Is(err, export.ErrInProgress) || errors.Is(err, repository.ErrUnknownTable) {
		failFromError(c, "Export", err)
		return
	}
	_ = c.Error(err)
	response.FailWithMessage(c, http.StatusInternalServerError, response.ErrExportFailed, err.Error())
}
