package attendance

import (
	"context"
	"log/slog"

	"github.com/Mahidhar1516/GNI/internal/viewmodel"
)

type Service interface {
	ListRecords(ctx context.Context, studentID, courseID string) ([]Record, error)
	Summarize(ctx context.Context, studentID string) (Summary, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ListRecords(ctx context.Context, studentID, courseID string) ([]Record, error) {
	if studentID == "" {
		return []Record{}, nil
	}
	records, err := s.repo.ListByStudent(ctx, studentID, courseID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch attendance", "error", err)
		return []Record{}, nil
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Summarize reduces the student's records to present/total/percent. No
// records means 0%, never a division fault.
func (s *service) Summarize(ctx context.Context, studentID string) (Summary, error) {
	records, err := s.ListRecords(ctx, studentID, "")
	if err != nil {
		return Summary{}, err
	}

	present := 0
	for _, rec := range records {
		if rec.Present {
			present++
		}
	}
	total := len(records)

	return Summary{
		Present: present,
		Total:   total,
		Percent: viewmodel.AttendancePercent(present, total),
	}, nil
}
