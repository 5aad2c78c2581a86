package repository

import (
	"context"
	"fmt"

	"github.com/stemsi/workforce-api/internal/model"
)

type JobRepository struct {
	db DBTX
}

func NewJobRepository(db DBTX) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j *model.Job) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO job (id, job) VALUES ($1, $2) RETURNING id, job`,
		j.ID, j.Job,
	).Scan(&j.ID, &j.Job)
	if err != nil {
		return fmt.Errorf("insert job %d: %w", j.ID, mapError(err))
	}
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int) (*model.Job, error) {
	j := &model.Job{}
	err := r.db.QueryRow(ctx, `SELECT id, job FROM job WHERE id = $1`, id).Scan(&j.ID, &j.Job)
	if err != nil {
		return nil, fmt.Errorf("get job %d: %w", id, mapError(err))
	}
	return j, nil
}

func (r *JobRepository) Update(ctx context.Context, j *model.Job) error {
	err := r.db.QueryRow(ctx,
		`UPDATE job SET job = $1 WHERE id = $2 RETURNING id, job`,
		j.Job, j.ID,
	).Scan(&j.ID, &j.Job)
	if err != nil {
		return fmt.Errorf("update job %d: %w", j.ID, mapError(err))
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id int) (*model.Job, error) {
	j := &model.Job{}
	err := r.db.QueryRow(ctx, `DELETE FROM job WHERE id = $1 RETURNING id, job`, id).Scan(&j.ID, &j.Job)
	if err != nil {
		return nil, fmt.Errorf("delete job %d: %w", id, mapError(err))
	}
	return j, nil
}
