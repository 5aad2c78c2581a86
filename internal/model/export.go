package model

import "time"

// ExportFormat names an export output encoding.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatAvro ExportFormat = "avro"
)

// ExportResult describes one finished export run.
type ExportResult struct {
	Message    string       `json:"message"`
	Format     ExportFormat `json:"format"`
	Table      string       `json:"table"`
	Path       string       `json:"path"`
	Rows       int          `json:"rows"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Error      string       `json:"error,omitempty"`
}
