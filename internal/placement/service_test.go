package placement

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	jobs         []Job
	applications []Application
	jobsErr      error
	createErr    error
}

func (f *fakeRepository) ListJobs(_ context.Context, jobType string) ([]Job, error) {
	if f.jobsErr != nil {
		return nil, f.jobsErr
	}
	var out []Job
	for _, j := range f.jobs {
		if jobType != "" && j.Type != jobType {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeRepository) GetJob(_ context.Context, id string) (*Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			return &f.jobs[i], nil
		}
	}
	return nil, ErrJobNotFound
}

func (f *fakeRepository) ApplicationsByStudent(_ context.Context, studentID string) ([]Application, error) {
	var out []Application
	for _, a := range f.applications {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetApplication(_ context.Context, jobID, studentID string) (*Application, error) {
	for i := range f.applications {
		if f.applications[i].JobID == jobID && f.applications[i].StudentID == studentID {
			return &f.applications[i], nil
		}
	}
	return nil, ErrApplicationNotFound
}

func (f *fakeRepository) CreateApplication(_ context.Context, app *Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.applications = append(f.applications, *app)
	return nil
}

type fakeProducer struct {
	keys   []string
	values []interface{}
	err    error
}

func (f *fakeProducer) Publish(_ context.Context, key string, value interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(repo *fakeRepository, producer *fakeProducer, now time.Time) *Service {
	var p ActivityProducer
	if producer != nil {
		p = producer
	}
	svc := NewService(repo, p, testLogger())
	svc.now = func() time.Time { return now }
	return svc
}

func TestListJobs(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{
		jobs: []Job{
			{ID: "j1", Company: "Acme", Position: "SDE", Type: TypeJob, ApplyBy: now.AddDate(0, 0, 14)},
			{ID: "j2", Company: "Globex", Position: "Intern", Type: TypeInternship, ApplyBy: now.AddDate(0, 0, 7)},
		},
		applications: []Application{
			{ID: "app1", JobID: "j1", StudentID: "s1"},
		},
	}
	svc := testService(repo, nil, now)

	t.Run("derives status from the caller's applications", func(t *testing.T) {
		views, err := svc.ListJobs(context.Background(), "s1", "", "")
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, StatusApplied, views[0].Status)
		assert.Equal(t, StatusOpen, views[1].Status)
	})

	t.Run("another student sees everything open", func(t *testing.T) {
		views, err := svc.ListJobs(context.Background(), "s2", "", "")
		require.NoError(t, err)
		for _, v := range views {
			assert.Equal(t, StatusOpen, v.Status)
		}
	})

	t.Run("type filter", func(t *testing.T) {
		views, err := svc.ListJobs(context.Background(), "s1", TypeInternship, "")
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "j2", views[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		views, err := svc.ListJobs(context.Background(), "s1", "", StatusApplied)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "j1", views[0].ID)
	})

	t.Run("fetch failure degrades to empty list", func(t *testing.T) {
		repo.jobsErr = errors.New("connection refused")
		defer func() { repo.jobsErr = nil }()

		views, err := svc.ListJobs(context.Background(), "s1", "", "")
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.NotNil(t, views)
	})
}

func TestApply(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	newRepo := func() *fakeRepository {
		return &fakeRepository{jobs: []Job{
			{ID: "j1", Company: "Acme", Position: "SDE", Type: TypeJob, ApplyBy: now.AddDate(0, 0, 14)},
			{ID: "closed", Company: "Initech", Position: "QA", Type: TypeJob, ApplyBy: now.AddDate(0, 0, -1)},
		}}
	}

	t.Run("records the application and emits a keyed event", func(t *testing.T) {
		repo := newRepo()
		producer := &fakeProducer{}
		svc := testService(repo, producer, now)

		app, err := svc.Apply(context.Background(), "j1", "s1")
		require.NoError(t, err)
		assert.Equal(t, "j1", app.JobID)
		require.Len(t, producer.values, 1)
		assert.Equal(t, "s1", producer.keys[0], "events are keyed by student")

		event, ok := producer.values[0].(AppliedEvent)
		require.True(t, ok)
		assert.Equal(t, "Acme", event.Company)
	})

	t.Run("second application conflicts", func(t *testing.T) {
		repo := newRepo()
		svc := testService(repo, nil, now)

		_, err := svc.Apply(context.Background(), "j1", "s1")
		require.NoError(t, err)
		_, err = svc.Apply(context.Background(), "j1", "s1")
		assert.ErrorIs(t, err, ErrAlreadyApplied)
	})

	t.Run("past the deadline", func(t *testing.T) {
		svc := testService(newRepo(), nil, now)
		_, err := svc.Apply(context.Background(), "closed", "s1")
		assert.ErrorIs(t, err, ErrApplicationsClosed)
	})

	t.Run("unknown job", func(t *testing.T) {
		svc := testService(newRepo(), nil, now)
		_, err := svc.Apply(context.Background(), "missing", "s1")
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("insert losing a race still conflicts", func(t *testing.T) {
		// The pre-check saw no row, but a concurrent apply won the insert
		// and the unique constraint rejected this one.
		repo := newRepo()
		repo.createErr = ErrAlreadyApplied
		svc := testService(repo, nil, now)

		_, err := svc.Apply(context.Background(), "j1", "s1")
		assert.ErrorIs(t, err, ErrAlreadyApplied)
	})

	t.Run("broker failure does not fail the application", func(t *testing.T) {
		repo := newRepo()
		producer := &fakeProducer{err: errors.New("kafka: broker down")}
		svc := testService(repo, producer, now)

		_, err := svc.Apply(context.Background(), "j1", "s1")
		require.NoError(t, err)
		assert.Len(t, repo.applications, 1)
	})
}
