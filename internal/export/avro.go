package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hamba/avro/v2/ocf"

	"github.com/stemsi/workforce-api/internal/model"
)

// DepartmentSchema is the fixed record schema of the Avro export.
const DepartmentSchema = `{
	"type": "record",
	"name": "department",
	"fields": [
		{"name": "id", "type": "int"},
		{"name": "department", "type": "string"}
	]
}`

// writeAvro replaces path with an Object Container File holding departments.
func writeAvro(path string, departments []model.Department) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	enc, err := ocf.NewEncoder(DepartmentSchema, tmp)
	if err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("create avro encoder: %w", err)
	}

	for _, d := range departments {
		if err := enc.Encode(d); err != nil {
			tmp.Close() //nolint:errcheck
			return fmt.Errorf("encode department %d: %w", d.ID, err)
		}
	}

	if err := enc.Close(); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("close avro encoder: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename avro: %w", err)
	}
	return nil
}
