package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	entries map[int][]Entry
	created []*Entry
	err     error
}

func (f *fakeRepository) ForDay(_ context.Context, _ string, day int) ([]Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[day], nil
}

func (f *fakeRepository) Create(_ context.Context, entry *Entry) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, entry)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestForDate(t *testing.T) {
	repo := &fakeRepository{entries: map[int][]Entry{
		// 2025-03-10 is a Monday.
		1: {
			{ID: "e1", Title: "Operating Systems", StartTime: "09:00", EndTime: "10:30", Type: TypeClass},
			{ID: "e2", Title: "Placement prep", StartTime: "13:30", EndTime: "14:30", Type: TypeOther},
		},
	}}
	svc := NewService(repo, testLogger())

	t.Run("maps date to weekday and formats times", func(t *testing.T) {
		view, err := svc.ForDate(context.Background(), "s1", "2025-03-10")
		require.NoError(t, err)

		assert.Equal(t, 1, view.DayOfWeek)
		require.Len(t, view.Entries, 2)
		assert.Equal(t, "9:00 AM", view.Entries[0].StartTime)
		assert.Equal(t, "10:30 AM", view.Entries[0].EndTime)
		assert.Equal(t, "1:30 PM", view.Entries[1].StartTime)
	})

	t.Run("day with no slots renders empty", func(t *testing.T) {
		view, err := svc.ForDate(context.Background(), "s1", "2025-03-11")
		require.NoError(t, err)
		assert.Equal(t, 2, view.DayOfWeek)
		assert.Empty(t, view.Entries)
		assert.NotNil(t, view.Entries)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := svc.ForDate(context.Background(), "s1", "10-03-2025")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("fetch failure is surfaced, not silent", func(t *testing.T) {
		repo.err = errors.New("connection refused")
		defer func() { repo.err = nil }()

		_, err := svc.ForDate(context.Background(), "s1", "2025-03-10")
		assert.ErrorIs(t, err, ErrFetchFailed)
	})
}

func TestCreateEvent(t *testing.T) {
	repo := &fakeRepository{entries: map[int][]Entry{}}
	svc := NewService(repo, testLogger())

	t.Run("stores a valid slot", func(t *testing.T) {
		entry, err := svc.CreateEvent(context.Background(), "s1", CreateEventRequest{
			DayOfWeek: 3,
			StartTime: "10:00",
			EndTime:   "11:00",
			Type:      TypeOther,
			Title:     "Library session",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "s1", entry.StudentID)
		assert.Nil(t, entry.CourseID)
		require.Len(t, repo.created, 1)
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := svc.CreateEvent(context.Background(), "s1", CreateEventRequest{
			DayOfWeek: 3,
			StartTime: "11:00",
			EndTime:   "10:00",
			Type:      TypeClass,
			Title:     "Backwards",
		})
		assert.ErrorIs(t, err, ErrInvalidTimes)
	})

	t.Run("equal start and end rejected", func(t *testing.T) {
		_, err := svc.CreateEvent(context.Background(), "s1", CreateEventRequest{
			DayOfWeek: 3,
			StartTime: "10:00",
			EndTime:   "10:00",
			Type:      TypeClass,
			Title:     "Zero length",
		})
		assert.ErrorIs(t, err, ErrInvalidTimes)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		_, err := svc.CreateEvent(context.Background(), "s1", CreateEventRequest{
			DayOfWeek: 3,
			StartTime: "ten",
			EndTime:   "11:00",
			Type:      TypeClass,
			Title:     "Bad time",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("course id carries through when set", func(t *testing.T) {
		entry, err := svc.CreateEvent(context.Background(), "s1", CreateEventRequest{
			CourseID:  "c1",
			DayOfWeek: 4,
			StartTime: "09:00",
			EndTime:   "10:00",
			Type:      TypeClass,
			Title:     "Operating Systems",
		})
		require.NoError(t, err)
		require.NotNil(t, entry.CourseID)
		assert.Equal(t, "c1", *entry.CourseID)
	})
}
