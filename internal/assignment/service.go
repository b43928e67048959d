package assignment

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mahidhar1516/GNI/internal/viewmodel"
)

const DefaultUpcomingLimit = 5

type Service interface {
	UpcomingAssignments(ctx context.Context, studentID string, limit int) ([]View, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger, now: time.Now}
}

// UpcomingAssignments joins assignments to the caller's zero-or-one
// submission and resolves the effective status. Fetch failures degrade to an
// empty list.
func (s *service) UpcomingAssignments(ctx context.Context, studentID string, limit int) ([]View, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	assignments, err := s.repo.Upcoming(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch assignments", "error", err)
		return []View{}, nil
	}

	ids := make([]string, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}

	byAssignment := make(map[string]Submission)
	if studentID != "" {
		submissions, err := s.repo.SubmissionsFor(ctx, studentID, ids)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch submissions", "error", err)
		} else {
			for _, sub := range submissions {
				byAssignment[sub.AssignmentID] = sub
			}
		}
	}

	now := s.now()
	views := make([]View, len(assignments))
	for i, a := range assignments {
		view := View{
			ID:         a.ID,
			Title:      a.Title,
			DueDate:    a.DueDate,
			TotalMarks: a.TotalMarks,
			Status:     viewmodel.StatusPending,
		}
		if a.Course != nil {
			view.CourseCode = a.Course.CourseCode
			view.CourseName = a.Course.CourseName
		}
		if sub, ok := byAssignment[a.ID]; ok {
			view.Status = viewmodel.ResolveSubmissionStatus(sub.Status)
			view.MarksObtained = sub.MarksObtained
		}
		view.Overdue = viewmodel.Overdue(a.DueDate, now, view.Status)
		views[i] = view
	}
	return views, nil
}
