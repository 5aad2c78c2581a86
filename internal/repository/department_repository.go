package repository

import (
	"context"
	"fmt"

	"github.com/stemsi/workforce-api/internal/model"
)

// DepartmentRepository handles department data access.
type DepartmentRepository struct {
	db DBTX
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(db DBTX) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create inserts a department with its caller-supplied ID.
func (r *DepartmentRepository) Create(ctx context.Context, d *model.Department) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO department (id, department) VALUES ($1, $2) RETURNING id, department`,
		d.ID, d.Department,
	).Scan(&d.ID, &d.Department)
	if err != nil {
		return fmt.Errorf("insert department %d: %w", d.ID, mapError(err))
	}
	return nil
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*model.Department, error) {
	d := &model.Department{}
	err := r.db.QueryRow(ctx,
		`SELECT id, department FROM department WHERE id = $1`, id,
	).Scan(&d.ID, &d.Department)
	if err != nil {
		return nil, fmt.Errorf("get department %d: %w", id, mapError(err))
	}
	return d, nil
}

// List returns every department ordered by ID.
func (r *DepartmentRepository) List(ctx context.Context) ([]model.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, department FROM department ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", mapError(err))
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Department); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Update overwrites the department name and returns ErrNotFound for unknown IDs.
func (r *DepartmentRepository) Update(ctx context.Context, d *model.Department) error {
	err := r.db.QueryRow(ctx,
		`UPDATE department SET department = $1 WHERE id = $2 RETURNING id, department`,
		d.Department, d.ID,
	).Scan(&d.ID, &d.Department)
	if err != nil {
		return fmt.Errorf("update department %d: %w", d.ID, mapError(err))
	}
	return nil
}

// Delete removes a department and returns the deleted row.
func (r *DepartmentRepository) Delete(ctx context.Context, id int) (*model.Department, error) {
	d := &model.Department{}
	err := r.db.QueryRow(ctx,
		`DELETE FROM department WHERE id = $1 RETURNING id, department`, id,
	).Scan(&d.ID, &d.Department)
	if err != nil {
		return nil, fmt.Errorf("delete department %d: %w", id, mapError(err))
	}
	return d, nil
}
