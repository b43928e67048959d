package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahidhar1516/GNI/internal/assignment"
	"github.com/Mahidhar1516/GNI/internal/attendance"
	"github.com/Mahidhar1516/GNI/internal/course"
	"github.com/Mahidhar1516/GNI/internal/profile"
)

type fakeProfiles struct {
	view *profile.View
	err  error
}

func (f *fakeProfiles) GetProfile(_ context.Context, _ string) (*profile.View, error) {
	return f.view, f.err
}

func (f *fakeProfiles) UpdateProfile(_ context.Context, _ string, _ profile.UpdateRequest) (*profile.View, error) {
	return f.view, f.err
}

type fakeCourses struct {
	views []course.View
	err   error
}

func (f *fakeCourses) GetEnrolledCourses(_ context.Context, _ string) ([]course.View, error) {
	return f.views, f.err
}

func (f *fakeCourses) GetCourse(_ context.Context, _ string) (*course.Course, error) {
	return nil, course.ErrCourseNotFound
}

func (f *fakeCourses) Enroll(_ context.Context, _, _ string) (*course.Enrollment, error) {
	return nil, course.ErrInvalidInput
}

type fakeAssignments struct {
	views []assignment.View
	err   error
}

func (f *fakeAssignments) UpcomingAssignments(_ context.Context, _ string, _ int) ([]assignment.View, error) {
	return f.views, f.err
}

type fakeAttendance struct {
	summary attendance.Summary
	err     error
}

func (f *fakeAttendance) ListRecords(_ context.Context, _, _ string) ([]attendance.Record, error) {
	return nil, f.err
}

func (f *fakeAttendance) Summarize(_ context.Context, _ string) (attendance.Summary, error) {
	return f.summary, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad(t *testing.T) {
	profiles := &fakeProfiles{view: &profile.View{
		Profile:  &profile.Profile{ID: "s1", FullName: "Jane Doe"},
		Initials: "JD",
	}}
	courses := &fakeCourses{views: []course.View{
		{Course: &course.Course{ID: "c1", CourseName: "Operating Systems"}, Initials: "OS"},
	}}
	assignments := &fakeAssignments{views: []assignment.View{
		{ID: "a1", Title: "Scheduler lab", Status: "pending"},
	}}
	att := &fakeAttendance{summary: attendance.Summary{Present: 18, Total: 20, Percent: 90}}

	newService := func() *Service {
		svc := NewService(profiles, courses, assignments, att, testLogger())
		svc.now = func() time.Time {
			return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		}
		return svc
	}

	t.Run("assembles all four sections", func(t *testing.T) {
		view, applied, err := newService().Load(context.Background(), "s1")
		require.NoError(t, err)
		require.True(t, applied)

		assert.Equal(t, "Good Morning", view.Greeting)
		require.NotNil(t, view.Profile)
		assert.Equal(t, "JD", view.Profile.Initials)
		assert.Len(t, view.Courses, 1)
		assert.Len(t, view.Upcoming, 1)
		assert.Equal(t, 90, view.Attendance.Percent)
	})

	t.Run("a failed section renders empty, others still fill", func(t *testing.T) {
		profiles.err = errors.New("connection refused")
		defer func() { profiles.err = nil }()

		view, applied, err := newService().Load(context.Background(), "s1")
		require.NoError(t, err)
		require.True(t, applied)

		assert.Nil(t, view.Profile)
		assert.Len(t, view.Courses, 1)
		assert.Equal(t, 90, view.Attendance.Percent)
	})

	t.Run("failed attendance leaves the zero summary", func(t *testing.T) {
		att.err = errors.New("connection refused")
		defer func() { att.err = nil }()

		view, _, err := newService().Load(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, attendance.Summary{}, view.Attendance)
	})

	t.Run("greeting follows the clock", func(t *testing.T) {
		svc := NewService(profiles, courses, assignments, att, testLogger())
		svc.now = func() time.Time {
			return time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)
		}

		view, _, err := svc.Load(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, "Good Evening", view.Greeting)
	})
}
