package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/stemsi/workforce-api/internal/model"
	"github.com/stemsi/workforce-api/internal/repository"
)

// DepartmentStore is the persistence contract DepartmentService depends on.
type DepartmentStore interface {
	Create(ctx context.Context, d *model.Department) error
	GetByID(ctx context.Context, id int) (*model.Department, error)
	Update(ctx context.Context, d *model.Department) error
	Delete(ctx context.Context, id int) (*model.Department, error)
}

type DepartmentService interface {
	CreateDepartment(ctx context.Context, id int, name string) (*model.Department, error)
	GetDepartment(ctx context.Context, id int) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id int, name string) (*model.Department, error)
	DeleteDepartment(ctx context.Context, id int) (*model.Department, error)
}

type departmentService struct {
	repo DepartmentStore
	log  zerolog.Logger
}

func NewDepartmentService(repo DepartmentStore, log zerolog.Logger) DepartmentService {
	return &departmentService{
		repo: repo,
		log:  log.With().Str("component", "department_service").Logger(),
	}
}

func (s *departmentService) CreateDepartment(ctx context.Context, id int, name string) (*model.Department, error) {
	d := &model.Department{ID: id, Department: name}
	if err := s.repo.Create(ctx, d); err != nil {
		logFailure(s.log, err, "create department", id)
		return nil, err
	}
	return d, nil
}

func (s *departmentService) GetDepartment(ctx context.Context, id int) (*model.Department, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logFailure(s.log, err, "get department", id)
		return nil, err
	}
	return d, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, id int, name string) (*model.Department, error) {
	d := &model.Department{ID: id, Department: name}
	if err := s.repo.Update(ctx, d); err != nil {
		logFailure(s.log, err, "update department", id)
		return nil, err
	}
	return d, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, id int) (*model.Department, error) {
	d, err := s.repo.Delete(ctx, id)
	if err != nil {
		logFailure(s.log, err, "delete department", id)
		return nil, err
	}
	return d, nil
}

// logFailure logs store errors. Missing rows are expected traffic and stay at debug.
func logFailure(log zerolog.Logger, err error, op string, id int) {
	if errors.Is(err, repository.ErrNotFound) {
		log.Debug().Int("id", id).Msg(op + ": not found")
		return
	}
	log.Error().Err(err).Int("id", id).Msg(op + " failed")
}
