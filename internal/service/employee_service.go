package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/workforce-api/internal/model"
)

// EmployeeStore is the persistence contract EmployeeService depends on.
type EmployeeStore interface {
	Create(ctx context.Context, e *model.Employee) error
	GetByID(ctx context.Context, id int) (*model.Employee, error)
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, id int) (*model.Employee, error)
}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, e *model.Employee) error
	GetEmployee(ctx context.Context, id int) (*model.Employee, error)
	// UpdateEmployee overwrites every mutable field of e.ID.
	UpdateEmployee(ctx context.Context, e *model.Employee) error
	DeleteEmployee(ctx context.Context, id int) error
}

type employeeService struct {
	repo EmployeeStore
	log  zerolog.Logger
}

func NewEmployeeService(repo EmployeeStore, log zerolog.Logger) EmployeeService {
	return &employeeService{
		repo: repo,
		log:  log.With().Str("component", "employee_service").Logger(),
	}
}

func (s *employeeService) CreateEmployee(ctx context.Context, e *model.Employee) error {
	if err := s.repo.Create(ctx, e); err != nil {
		logFailure(s.log, err, "create employee", e.ID)
		return err
	}
	return nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id int) (*model.Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logFailure(s.log, err, "get employee", id)
		return nil, err
	}
	return e, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, e *model.Employee) error {
	if err := s.repo.Update(ctx, e); err != nil {
		logFailure(s.log, err, "update employee", e.ID)
		return err
	}
	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id int) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		logFailure(s.log, err, "delete employee", id)
		return err
	}
	return nil
}
