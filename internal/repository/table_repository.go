package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
)

// ErrUnknownTable is returned when a snapshot is requested for a table
// outside ExportableTables.
var ErrUnknownTable = errors.New("table is not exportable")

// ExportableTables lists the tables a snapshot may read. Table names are
// interpolated into SQL, so only these are accepted.
var ExportableTables = map[string]bool{
	"department": true,
	"job":        true,
	"employee":   true,
}

// TableNames returns ExportableTables in sorted order.
func TableNames() []string {
	names := make([]string, 0, len(ExportableTables))
	for name := range ExportableTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TableSnapshot is a whole table materialized in memory.
type TableSnapshot struct {
	Table   string
	Columns []string
	Rows    [][]any
}

// TableRepository reads entire tables for export jobs.
type TableRepository struct {
	db DBTX
}

// NewTableRepository creates a new TableRepository.
func NewTableRepository(db DBTX) *TableRepository {
	return &TableRepository{db: db}
}

// Snapshot loads every row of table ordered by id.
func (r *TableRepository) Snapshot(ctx context.Context, table string) (*TableSnapshot, error) {
	if !ExportableTables[table] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}

	query := `SELECT * FROM ` + pgx.Identifier{table}.Sanitize() + ` ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", table, mapError(err))
	}
	defer rows.Close()

	snapshot := &TableSnapshot{Table: table}
	for _, fd := range rows.FieldDescriptions() {
		snapshot.Columns = append(snapshot.Columns, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read %s row: %w", table, err)
		}
		snapshot.Rows = append(snapshot.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read table %s: %w", table, err)
	}
	return snapshot, nil
}
