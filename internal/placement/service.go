package placement

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrApplicationsClosed  = errors.New("applications are closed for this job")
)

// ActivityProducer emits student-activity events. *kafka.Producer satisfies it.
type ActivityProducer interface {
	Publish(ctx context.Context, key string, value interface{}) error
}

type Service struct {
	repo     Repository
	producer ActivityProducer
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, producer ActivityProducer, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// ListJobs returns postings with the caller's status folded in: "applied"
// when the student already has an application, "open" otherwise. An
// optional status filter keeps only matching rows. A failed load degrades
// to an empty list.
func (s *Service) ListJobs(ctx context.Context, studentID, jobType, status string) ([]View, error) {
	jobs, err := s.repo.ListJobs(ctx, jobType)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch placement jobs", "error", err, "type", jobType)
		return []View{}, nil
	}

	applied := make(map[string]bool)
	apps, err := s.repo.ApplicationsByStudent(ctx, studentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch applications", "error", err, "student_id", studentID)
	} else {
		for _, a := range apps {
			applied[a.JobID] = true
		}
	}

	views := make([]View, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		jobStatus := StatusOpen
		if applied[job.ID] {
			jobStatus = StatusApplied
		}
		if status != "" && status != jobStatus {
			continue
		}
		views = append(views, View{Job: &job, Status: jobStatus})
	}
	return views, nil
}

// Apply records an application and emits an AppliedEvent keyed by the
// student so one student's activity stays ordered. Applying twice or past
// the deadline fails.
func (s *Service) Apply(ctx context.Context, jobID, studentID string) (*Application, error) {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if s.now().After(job.ApplyBy) {
		return nil, ErrApplicationsClosed
	}

	if _, err := s.repo.GetApplication(ctx, jobID, studentID); err == nil {
		return nil, ErrAlreadyApplied
	} else if !errors.Is(err, ErrApplicationNotFound) {
		return nil, err
	}

	app := &Application{
		ID:        uuid.NewString(),
		JobID:     jobID,
		StudentID: studentID,
		AppliedAt: s.now(),
	}
	if err := s.repo.CreateApplication(ctx, app); err != nil {
		s.logger.ErrorContext(ctx, "failed to create application", "error", err, "job_id", jobID, "student_id", studentID)
		return nil, err
	}

	if s.producer != nil {
		event := AppliedEvent{
			StudentID: studentID,
			JobID:     jobID,
			Company:   job.Company,
			Position:  job.Position,
			AppliedAt: app.AppliedAt,
		}
		if err := s.producer.Publish(ctx, studentID, event); err != nil {
			s.logger.WarnContext(ctx, "failed to publish application event", "error", err, "job_id", jobID)
		}
	}

	return app, nil
}
