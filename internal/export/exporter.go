package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/workforce-api/internal/config"
	"github.com/stemsi/workforce-api/internal/metrics"
	"github.com/stemsi/workforce-api/internal/model"
	"github.com/stemsi/workforce-api/internal/repository"
)

// ErrInProgress is returned when another export of the same file holds the lock.
var ErrInProgress = errors.New("export already in progress")

// avroTable is the only table the Avro schema describes.
const avroTable = "department"

// TableReader loads a whole table for the CSV export.
type TableReader interface {
	Snapshot(ctx context.Context, table string) (*repository.TableSnapshot, error)
}

// DepartmentLister loads every department for the Avro export.
type DepartmentLister interface {
	List(ctx context.Context) ([]model.Department, error)
}

// Locker serializes exports writing the same file. The returned release
// func must be called once the file is written.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// StatusStore keeps the last export result per format.
type StatusStore interface {
	SaveResult(ctx context.Context, result *model.ExportResult) error
	LastResult(ctx context.Context, format model.ExportFormat) (*model.ExportResult, error)
}

// Config controls where and what the Exporter writes.
type Config struct {
	OutputDir    string
	DefaultTable string
}

// Exporter runs CSV and Avro exports.
type Exporter struct {
	tables      TableReader
	departments DepartmentLister
	locker      Locker
	status      StatusStore
	cfg         Config
	log         zerolog.Logger
	now         func() time.Time
}

// NewExporter creates an Exporter. The output directory is created on demand.
func NewExporter(tables TableReader, departments DepartmentLister, locker Locker, status StatusStore, cfg Config, log zerolog.Logger) *Exporter {
	if cfg.DefaultTable == "" {
		cfg.DefaultTable = avroTable
	}
	return &Exporter{
		tables:      tables,
		departments: departments,
		locker:      locker,
		status:      status,
		cfg:         cfg,
		log:         log.With().Str("component", "exporter").Logger(),
		now:         time.Now,
	}
}

// CSVPath returns the file a CSV export of table writes.
func (e *Exporter) CSVPath(table string) string {
	return filepath.Join(e.cfg.OutputDir, table+"_table_data_db.csv")
}

// AvroPath returns the file the Avro export writes.
func (e *Exporter) AvroPath() string {
	return filepath.Join(e.cfg.OutputDir, avroTable+".avro")
}

// ExportCSV writes table (or the configured default when empty) to CSV.
func (e *Exporter) ExportCSV(ctx context.Context, table string) (*model.ExportResult, error) {
	if table == "" {
		table = e.cfg.DefaultTable
	}
	if !repository.ExportableTables[table] {
		return nil, fmt.Errorf("%w: %q", repository.ErrUnknownTable, table)
	}

	return e.run(ctx, model.ExportFormatCSV, table, e.CSVPath(table), "CSV from db file created successfully",
		func(ctx context.Context, path string) (int, error) {
			snapshot, err := e.tables.Snapshot(ctx, table)
			if err != nil {
				return 0, err
			}
			if err := writeCSV(path, snapshot); err != nil {
				return 0, err
			}
			return len(snapshot.Rows), nil
		})
}

// ExportAvro writes the department table to an Avro container file.
func (e *Exporter) ExportAvro(ctx context.Context) (*model.ExportResult, error) {
	return e.run(ctx, model.ExportFormatAvro, avroTable, e.AvroPath(), "Avro file created successfully",
		func(ctx context.Context, path string) (int, error) {
			departments, err := e.departments.List(ctx)
			if err != nil {
				return 0, err
			}
			if err := writeAvro(path, departments); err != nil {
				return 0, err
			}
			return len(departments), nil
		})
}

// LastRuns returns the most recent result for every format that has run.
func (e *Exporter) LastRuns(ctx context.Context) (map[model.ExportFormat]*model.ExportResult, error) {
	runs := make(map[model.ExportFormat]*model.ExportResult)
	for _, format := range []model.ExportFormat{model.ExportFormatCSV, model.ExportFormatAvro} {
		result, err := e.status.LastResult(ctx, format)
		if err != nil {
			return nil, fmt.Errorf("load %s status: %w", format, err)
		}
		if result != nil {
			runs[format] = result
		}
	}
	return runs, nil
}

type writeFunc func(ctx context.Context, path string) (rows int, err error)

func (e *Exporter) run(ctx context.Context, format model.ExportFormat, table, path, message string, write writeFunc) (*model.ExportResult, error) {
	release, err := e.locker.Acquire(ctx, config.CacheKey.ExportLockKey(string(format), table))
	if err != nil {
		return nil, err
	}
	defer release()

	result := &model.ExportResult{
		Format:    format,
		Table:     table,
		Path:      path,
		StartedAt: e.now().UTC(),
	}

	rows, err := e.write(ctx, path, write)
	result.FinishedAt = e.now().UTC()
	if err != nil {
		result.Message = "export failed"
		result.Error = err.Error()
		e.record(ctx, result)
		metrics.ObserveExport(string(format), table, "failed", 0)
		e.log.Error().Err(err).Str("format", string(format)).Str("table", table).Msg("export failed")
		return nil, fmt.Errorf("%s export of %s: %w", format, table, err)
	}

	result.Message = message
	result.Rows = rows
	e.record(ctx, result)
	metrics.ObserveExport(string(format), table, "success", rows)
	e.log.Info().
		Str("format", string(format)).
		Str("table", table).
		Str("path", path).
		Int("rows", rows).
		Dur("took", result.FinishedAt.Sub(result.StartedAt)).
		Msg("export finished")
	return result, nil
}

func (e *Exporter) write(ctx context.Context, path string, write writeFunc) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}
	return write(ctx, path)
}

// record stores result; a status failure never fails the export itself.
func (e *Exporter) record(ctx context.Context, result *model.ExportResult) {
	if err := e.status.SaveResult(ctx, result); err != nil {
		e.log.Warn().Err(err).Str("format", string(result.Format)).Msg("failed to save export status")
	}
}
