package metrics

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	studentsRegistered metric.Int64Counter
	dashboardsViewed   metric.Int64Counter
	coursesEnrolled    metric.Int64Counter
	noticesPublished   metric.Int64Counter
	jobApplications    metric.Int64Counter
	scheduleViews      metric.Int64Counter
}

func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.studentsRegistered, err = meter.Int64Counter(
		"portal.students.registered",
		metric.WithDescription("Total number of students registered"),
		metric.WithUnit("{student}"),
	)
	if err != nil {
		return nil, err
	}

	m.dashboardsViewed, err = meter.Int64Counter(
		"portal.dashboard.viewed",
		metric.WithDescription("Total number of dashboard views"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, err
	}

	m.coursesEnrolled, err = meter.Int64Counter(
		"portal.courses.enrolled",
		metric.WithDescription("Total number of course enrollments"),
		metric.WithUnit("{enrollment}"),
	)
	if err != nil {
		return nil, err
	}

	m.noticesPublished, err = meter.Int64Counter(
		"portal.notices.published",
		metric.WithDescription("Total number of notices published"),
		metric.WithUnit("{notice}"),
	)
	if err != nil {
		return nil, err
	}

	m.jobApplications, err = meter.Int64Counter(
		"portal.placements.applications",
		metric.WithDescription("Total number of job applications submitted"),
		metric.WithUnit("{application}"),
	)
	if err != nil {
		return nil, err
	}

	m.scheduleViews, err = meter.Int64Counter(
		"portal.schedule.viewed",
		metric.WithDescription("Total number of schedule day views"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) RecordStudentRegistration(ctx context.Context) {
	if m != nil && m.studentsRegistered != nil {
		m.studentsRegistered.Add(ctx, 1)
	}
}

func (m *Metrics) RecordDashboardViewed(ctx context.Context) {
	if m != nil && m.dashboardsViewed != nil {
		m.dashboardsViewed.Add(ctx, 1)
	}
}

func (m *Metrics) RecordCourseEnrollment(ctx context.Context) {
	if m != nil && m.coursesEnrolled != nil {
		m.coursesEnrolled.Add(ctx, 1)
	}
}

func (m *Metrics) RecordNoticePublished(ctx context.Context) {
	if m != nil && m.noticesPublished != nil {
		m.noticesPublished.Add(ctx, 1)
	}
}

func (m *Metrics) RecordJobApplication(ctx context.Context) {
	if m != nil && m.jobApplications != nil {
		m.jobApplications.Add(ctx, 1)
	}
}

func (m *Metrics) RecordScheduleViewed(ctx context.Context) {
	if m != nil && m.scheduleViews != nil {
		m.scheduleViews.Add(ctx, 1)
	}
}

// NewMock creates a no-op Metrics instance for testing
// The returned Metrics will safely ignore all Record* calls
func NewMock() *Metrics {
	return &Metrics{}
}
