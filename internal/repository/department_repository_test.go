package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/workforce-api/internal/model"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestDepartmentCreate(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(`INSERT INTO department \(id, department\)`).
		WithArgs(1, "Sales").
		WillReturnRows(pgxmock.NewRows([]string{"id", "department"}).AddRow(1, "Sales"))

	d := &model.Department{ID: 1, Department: "Sales"}
	require.NoError(t, repo.Create(context.Background(), d))
	assert.Equal(t, model.Department{ID: 1, Department: "Sales"}, *d)
}

func TestDepartmentCreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(`INSERT INTO department`).
		WithArgs(1, "Sales").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "department_pkey"`})

	err := repo.Create(context.Background(), &model.Department{ID: 1, Department: "Sales"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "department_pkey")
}

func TestDepartmentGetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(`SELECT id, department FROM department WHERE id = \$1`).
		WithArgs(42).
		WillReturnError(pgx.ErrNoRows)

	d, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDepartmentUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(`UPDATE department SET department = \$1 WHERE id = \$2`).
		WithArgs("Marketing", 1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "department"}).AddRow(1, "Marketing"))

	d := &model.Department{ID: 1, Department: "Marketing"}
	require.NoError(t, repo.Update(context.Background(), d))
	assert.Equal(t, "Marketing", d.Department)
}

func TestDepartmentDeleteReferenced(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(`DELETE FROM department WHERE id = \$1`).
		WithArgs(1).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "update or delete on table \"department\" violates foreign key constraint"})

	_, err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestDepartmentList(t *testing.T) {
	mock := newMock(t)
	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(`SELECT id, department FROM department ORDER BY id ASC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "department"}).
			AddRow(1, "Sales").
			AddRow(2, "Engineering"))

	departments, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Department{{ID: 1, Department: "Sales"}, {ID: 2, Department: "Engineering"}}, departments)
}

func TestMapErrorPassesThroughUnknownErrors(t *testing.T) {
	boom := errors.New("connection reset")
	assert.Same(t, boom, mapError(boom))
	assert.NoError(t, mapError(nil))
}
