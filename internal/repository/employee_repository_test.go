package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/workforce-api/internal/model"
)

var employeeCols = []string{"id", "name", "datetime", "department_id", "job_id"}

func TestEmployeeCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(`INSERT INTO employee`).
		WithArgs(7, "Ada", "2021-11-07T02:48:42Z", 1, 2).
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow(7, "Ada", "2021-11-07T02:48:42Z", 1, 2))

	e := &model.Employee{ID: 7, Name: "Ada", Datetime: "2021-11-07T02:48:42Z", DepartmentID: 1, JobID: 2}
	require.NoError(t, repo.Create(context.Background(), e))
	assert.Equal(t, 7, e.ID)
}

func TestEmployeeCreateUnknownDepartment(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(`INSERT INTO employee`).
		WithArgs(7, "Ada", "x", 99, 2).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "insert or update on table \"employee\" violates foreign key constraint"})

	err := repo.Create(context.Background(), &model.Employee{ID: 7, Name: "Ada", Datetime: "x", DepartmentID: 99, JobID: 2})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestEmployeeUpdateOverwritesAllFields(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(`UPDATE employee\s+SET name = \$1, datetime = \$2, department_id = \$3, job_id = \$4\s+WHERE id = \$5`).
		WithArgs("Grace", "2022-01-01", 3, 4, 7).
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow(7, "Grace", "2022-01-01", 3, 4))

	e := &model.Employee{ID: 7, Name: "Grace", Datetime: "2022-01-01", DepartmentID: 3, JobID: 4}
	require.NoError(t, repo.Update(context.Background(), e))
	assert.Equal(t, model.Employee{ID: 7, Name: "Grace", Datetime: "2022-01-01", DepartmentID: 3, JobID: 4}, *e)
}

func TestEmployeeDeleteThenGet(t *testing.T) {
	mock := newMock(t)
	repo := NewEmployeeRepository(mock)

	mock.ExpectQuery(`DELETE FROM employee WHERE id = \$1`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(employeeCols).AddRow(7, "Ada", "x", 1, 2))
	mock.ExpectQuery(`SELECT id, name, datetime, department_id, job_id FROM employee WHERE id = \$1`).
		WithArgs(7).
		WillReturnError(pgx.ErrNoRows)

	deleted, err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Ada", deleted.Name)

	_, err = repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}
