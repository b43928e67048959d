package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Mahidhar1516/GNI/internal/assignment"
	"github.com/Mahidhar1516/GNI/internal/attendance"
	"github.com/Mahidhar1516/GNI/internal/course"
	"github.com/Mahidhar1516/GNI/internal/fetch"
	"github.com/Mahidhar1516/GNI/internal/profile"
	"github.com/Mahidhar1516/GNI/internal/viewmodel"
)

// View is the assembled dashboard. Each section fills independently; a
// failed section renders empty rather than failing the whole screen.
type View struct {
	Greeting   string             `json:"greeting"`
	Profile    *profile.View      `json:"profile,omitempty"`
	Courses    []course.View      `json:"courses"`
	Upcoming   []assignment.View  `json:"upcoming_assignments"`
	Attendance attendance.Summary `json:"attendance"`
}

// Service fans out the four dashboard section loads and assembles the
// result. Loads run through a fetch group so only the latest request per
// student is applied.
type Service struct {
	profiles    profile.Service
	courses     course.Service
	assignments assignment.Service
	attendance  attendance.Service
	group       *fetch.Group
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(
	profiles profile.Service,
	courses course.Service,
	assignments assignment.Service,
	att attendance.Service,
	logger *slog.Logger,
) *Service {
	return &Service{
		profiles:    profiles,
		courses:     courses,
		assignments: assignments,
		attendance:  att,
		group:       fetch.NewGroup(),
		logger:      logger,
		now:         time.Now,
	}
}

// Load assembles the dashboard for one student. The four sections load
// concurrently; each failure is logged and leaves its section empty. The
// second return reports whether the result is current, a superseded load
// returns false and callers discard it.
func (s *Service) Load(ctx context.Context, studentID string) (View, bool, error) {
	key := fmt.Sprintf("dashboard:%s", studentID)
	result, applied, err := s.group.Do(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.load(ctx, studentID), nil
	})
	if err != nil {
		return View{}, false, err
	}
	if !applied {
		return View{}, false, nil
	}
	view, _ := result.(View)
	return view, true, nil
}

func (s *Service) load(ctx context.Context, studentID string) View {
	view := View{
		Greeting: viewmodel.Greeting(s.now().Hour()),
		Courses:  []course.View{},
		Upcoming: []assignment.View{},
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		p, err := s.profiles.GetProfile(ctx, studentID)
		if err != nil {
			s.logger.ErrorContext(ctx, "dashboard profile load failed", "error", err, "student_id", studentID)
			return
		}
		view.Profile = p
	}()

	go func() {
		defer wg.Done()
		courses, err := s.courses.GetEnrolledCourses(ctx, studentID)
		if err != nil {
			s.logger.ErrorContext(ctx, "dashboard courses load failed", "error", err, "student_id", studentID)
			return
		}
		view.Courses = courses
	}()

	go func() {
		defer wg.Done()
		upcoming, err := s.assignments.UpcomingAssignments(ctx, studentID, assignment.DefaultUpcomingLimit)
		if err != nil {
			s.logger.ErrorContext(ctx, "dashboard assignments load failed", "error", err, "student_id", studentID)
			return
		}
		view.Upcoming = upcoming
	}()

	go func() {
		defer wg.Done()
		summary, err := s.attendance.Summarize(ctx, studentID)
		if err != nil {
			s.logger.ErrorContext(ctx, "dashboard attendance load failed", "error", err, "student_id", studentID)
			return
		}
		view.Attendance = summary
	}()

	wg.Wait()
	return view
}

// Reset discards any dashboard loads still in flight. Called on sign-out.
func (s *Service) Reset() {
	s.group.Reset()
}
