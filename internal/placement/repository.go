package placement

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/Mahidhar1516/GNI/internal/db"
)

// Repository loads postings and records applications.
type Repository interface {
	ListJobs(ctx context.Context, jobType string) ([]Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	ApplicationsByStudent(ctx context.Context, studentID string) ([]Application, error)
	GetApplication(ctx context.Context, jobID, studentID string) (*Application, error)
	CreateApplication(ctx context.Context, app *Application) error
}

type bunRepository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &bunRepository{db: db}
}

func (r *bunRepository) ListJobs(ctx context.Context, jobType string) ([]Job, error) {
	var jobs []Job
	q := r.db.NewSelect().Model(&jobs)
	if jobType != "" {
		q = q.Where("pj.type = ?", jobType)
	}
	if err := q.Order("pj.apply_by ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *bunRepository) GetJob(ctx context.Context, id string) (*Job, error) {
	job := new(Job)
	err := r.db.NewSelect().Model(job).Where("pj.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *bunRepository) ApplicationsByStudent(ctx context.Context, studentID string) ([]Application, error) {
	var apps []Application
	err := r.db.NewSelect().
		Model(&apps).
		Where("pa.student_id = ?", studentID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *bunRepository) GetApplication(ctx context.Context, jobID, studentID string) (*Application, error) {
	app := new(Application)
	err := r.db.NewSelect().
		Model(app).
		Where("pa.job_id = ?", jobID).
		Where("pa.student_id = ?", studentID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *bunRepository) CreateApplication(ctx context.Context, app *Application) error {
	_, err := r.db.NewInsert().Model(app).Exec(ctx)
	if db.IsUniqueViolation(err) {
		// The (job, student) constraint caught a concurrent duplicate.
		return ErrAlreadyApplied
	}
	return err
}
