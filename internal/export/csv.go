package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stemsi/workforce-api/internal/repository"
)

// writeCSV writes snapshot to path with a header row. The file is written
// to a temporary sibling first and renamed, so readers never see a partial file.
func writeCSV(path string, snapshot *repository.TableSnapshot) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	w := csv.NewWriter(tmp)
	if err := w.Write(snapshot.Columns); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(snapshot.Columns))
	for _, row := range snapshot.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = formatValue(row[i])
			}
		}
		if err := w.Write(record); err != nil {
			tmp.Close() //nolint:errcheck
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename csv: %w", err)
	}
	return nil
}

// formatValue renders a driver value the way a spreadsheet expects it.
// NULL becomes an empty cell.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
