package repository

import (
	"context"
	"fmt"

	"github.com/stemsi/workforce-api/internal/model"
)

const employeeColumns = `id, name, datetime, department_id, job_id`

// EmployeeRepository handles employee data access.
type EmployeeRepository struct {
	db DBTX
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(db DBTX) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts an employee. Department and job references are checked
// only by the foreign key constraints.
func (r *EmployeeRepository) Create(ctx context.Context, e *model.Employee) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO employee (`+employeeColumns+`)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+employeeColumns,
		e.ID, e.Name, e.Datetime, e.DepartmentID, e.JobID,
	).Scan(&e.ID, &e.Name, &e.Datetime, &e.DepartmentID, &e.JobID)
	if err != nil {
		return fmt.Errorf("insert employee %d: %w", e.ID, mapError(err))
	}
	return nil
}

// GetByID retrieves an employee by ID.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (*model.Employee, error) {
	e := &model.Employee{}
	err := r.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employee WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Datetime, &e.DepartmentID, &e.JobID)
	if err != nil {
		return nil, fmt.Errorf("get employee %d: %w", id, mapError(err))
	}
	return e, nil
}

// Update overwrites all mutable employee fields.
func (r *EmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	err := r.db.QueryRow(ctx,
		`UPDATE employee
		 SET name = $1, datetime = $2, department_id = $3, job_id = $4
		 WHERE id = $5
		 RETURNING `+employeeColumns,
		e.Name, e.Datetime, e.DepartmentID, e.JobID, e.ID,
	).Scan(&e.ID, &e.Name, &e.Datetime, &e.DepartmentID, &e.JobID)
	if err != nil {
		return fmt.Errorf("update employee %d: %w", e.ID, mapError(err))
	}
	return nil
}

// Delete removes an employee and returns the deleted row.
func (r *EmployeeRepository) Delete(ctx context.Context, id int) (*model.Employee, error) {
	e := &model.Employee{}
	err := r.db.QueryRow(ctx,
		`DELETE FROM employee WHERE id = $1 RETURNING `+employeeColumns, id,
	).Scan(&e.ID, &e.Name, &e.Datetime, &e.DepartmentID, &e.JobID)
	if err != nil {
		return nil, fmt.Errorf("delete employee %d: %w", id, mapError(err))
	}
	return e, nil
}
