package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Mahidhar1516/GNI/internal/fetch"
	"github.com/Mahidhar1516/GNI/internal/viewmodel"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidTimes  = errors.New("start time must be before end time")
	ErrFetchFailed   = errors.New("failed to load schedule")
	ErrInvalidInput  = errors.New("invalid input")
	ErrResultDiscard = errors.New("result superseded")
)

// Service resolves a calendar date to its weekly slots. Day lookups run
// through a fetch group so only the latest request per student is applied.
type Service struct {
	repo   Repository
	group  *fetch.Group
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		group:  fetch.NewGroup(),
		logger: logger,
	}
}

// ForDate returns the schedule for the given YYYY-MM-DD date. A lookup that
// was superseded by a newer one for the same student returns ErrResultDiscard;
// callers drop it without rendering.
func (s *Service) ForDate(ctx context.Context, studentID, date string) (DayView, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DayView{}, ErrInvalidDate
	}
	day := int(parsed.Weekday())

	key := fmt.Sprintf("schedule:%s", studentID)
	result, applied, err := s.group.Do(ctx, key, func(ctx context.Context) (interface{}, error) {
		return s.repo.ForDay(ctx, studentID, day)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch schedule", "error", err, "student_id", studentID, "day", day)
		return DayView{}, ErrFetchFailed
	}
	if !applied {
		return DayView{}, ErrResultDiscard
	}

	entries, _ := result.([]Entry)
	views := make([]View, 0, len(entries))
	for _, e := range entries {
		views = append(views, View{
			ID:        e.ID,
			Title:     e.Title,
			StartTime: viewmodel.FormatTime12(e.StartTime),
			EndTime:   viewmodel.FormatTime12(e.EndTime),
			Type:      e.Type,
		})
	}

	return DayView{
		Date:      date,
		DayOfWeek: day,
		Entries:   views,
	}, nil
}

// CreateEvent stores a new weekly slot after checking the time range.
func (s *Service) CreateEvent(ctx context.Context, studentID string, req CreateEventRequest) (*Entry, error) {
	start, err := time.Parse("15:04", req.StartTime)
	if err != nil {
		return nil, ErrInvalidInput
	}
	end, err := time.Parse("15:04", req.EndTime)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if !start.Before(end) {
		return nil, ErrInvalidTimes
	}

	entry := &Entry{
		ID:        uuid.NewString(),
		StudentID: studentID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Title:     req.Title,
	}
	if req.CourseID != "" {
		entry.CourseID = &req.CourseID
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to create schedule event", "error", err, "student_id", studentID)
		return nil, err
	}
	return entry, nil
}

// Reset discards any schedule lookups still in flight. Called on sign-out.
func (s *Service) Reset() {
	s.group.Reset()
}
