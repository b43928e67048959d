package notice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EventProducer publishes notice events. *messaging.Producer satisfies it.
type EventProducer interface {
	Publish(ctx context.Context, value interface{}) error
}

type Service struct {
	repo     Repository
	producer EventProducer
	logger   *slog.Logger
}

func NewService(repo Repository, producer EventProducer, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// List returns notices newest first, optionally filtered by kind and
// category. A failed load degrades to an empty board.
func (s *Service) List(ctx context.Context, kind, category string) ([]Notice, error) {
	notices, err := s.repo.List(ctx, kind, category)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch notices", "error", err, "kind", kind, "category", category)
		return []Notice{}, nil
	}
	if notices == nil {
		notices = []Notice{}
	}
	return notices, nil
}

// Publish stores a notice and emits a PublishedEvent. The event is best
// effort; a broker failure does not roll the notice back.
func (s *Service) Publish(ctx context.Context, req CreateRequest) (*Notice, error) {
	category := req.Category
	if category == "" {
		category = CategoryGeneral
	}

	notice := &Notice{
		ID:          uuid.NewString(),
		Kind:        req.Kind,
		Category:    category,
		Title:       req.Title,
		Body:        req.Body,
		Tag:         req.Tag,
		AuthorName:  req.AuthorName,
		AuthorTitle: req.AuthorTitle,
		PostedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, notice); err != nil {
		s.logger.ErrorContext(ctx, "failed to create notice", "error", err)
		return nil, err
	}

	if s.producer != nil {
		event := PublishedEvent{
			NoticeID: notice.ID,
			Kind:     notice.Kind,
			Category: notice.Category,
			Title:    notice.Title,
			PostedAt: notice.PostedAt,
		}
		if err := s.producer.Publish(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "failed to publish notice event", "error", err, "notice_id", notice.ID)
		}
	}

	return notice, nil
}
