package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/workforce-api/internal/model"
)

// JobStore is the persistence contract JobService depends on.
type JobStore interface {
	Create(ctx context.Context, j *model.Job) error
	GetByID(ctx context.Context, id int) (*model.Job, error)
	Update(ctx context.Context, j *model.Job) error
	Delete(ctx context.Context, id int) (*model.Job, error)
}

type JobService interface {
	CreateJob(ctx context.Context, id int, title string) (*model.Job, error)
	GetJob(ctx context.Context, id int) (*model.Job, error)
	UpdateJob(ctx context.Context, id int, title string) (*model.Job, error)
	DeleteJob(ctx context.Context, id int) (*model.Job, error)
}

type jobService struct {
	repo JobStore
	log  zerolog.Logger
}

func NewJobService(repo JobStore, log zerolog.Logger) JobService {
	return &jobService{
		repo: repo,
		log:  log.With().Str("component", "job_service").Logger(),
	}
}

func (s *jobService) CreateJob(ctx context.Context, id int, title string) (*model.Job, error) {
	j := &model.Job{ID: id, Job: title}
	if err := s.repo.Create(ctx, j); err != nil {
		logFailure(s.log, err, "create job", id)
		return nil, err
	}
	return j, nil
}

func (s *jobService) GetJob(ctx context.Context, id int) (*model.Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logFailure(s.log, err, "get job", id)
		return nil, err
	}
	return j, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id int, title string) (*model.Job, error) {
	j := &model.Job{ID: id, Job: title}
	if err := s.repo.Update(ctx, j); err != nil {
		logFailure(s.log, err, "update job", id)
		return nil, err
	}
	return j, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id int) (*model.Job, error) {
	j, err := s.repo.Delete(ctx, id)
	if err != nil {
		logFailure(s.log, err, "delete job", id)
		return nil, err
	}
	return j, nil
}
