package course

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Mahidhar1516/GNI/internal/viewmodel"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrInvalidInput       = errors.New("invalid input")
)

type Service interface {
	GetEnrolledCourses(ctx context.Context, studentID string) ([]View, error)
	GetCourse(ctx context.Context, id string) (*Course, error)
	Enroll(ctx context.Context, studentID, courseID string) (*Enrollment, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// GetEnrolledCourses builds the learning-screen course list. A failed fetch
// degrades to an empty list; "no data yet" and "fetch failed" render the
// same empty state.
func (s *service) GetEnrolledCourses(ctx context.Context, studentID string) ([]View, error) {
	if studentID == "" {
		return []View{}, nil
	}

	courses, err := s.repo.GetEnrolled(ctx, studentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch enrolled courses", "error", err)
		return []View{}, nil
	}

	views := make([]View, len(courses))
	for i := range courses {
		views[i] = View{
			Course:     &courses[i],
			Initials:   viewmodel.CourseInitials(courses[i].CourseName),
			ColorIndex: i % 7,
		}
	}
	return views, nil
}

func (s *service) GetCourse(ctx context.Context, id string) (*Course, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Enroll creates an active enrollment for the student. One row per
// (student, course) pair.
func (s *service) Enroll(ctx context.Context, studentID, courseID string) (*Enrollment, error) {
	if studentID == "" || courseID == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetEnrollment(ctx, studentID, courseID)
	if err != nil && !errors.Is(err, ErrEnrollmentNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := &Enrollment{
		ID:        uuid.NewString(),
		StudentID: studentID,
		CourseID:  courseID,
		Status:    StatusActive,
	}
	if err := s.repo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}
