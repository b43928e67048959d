package schedule

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository loads and stores weekly schedule entries.
type Repository interface {
	ForDay(ctx context.Context, studentID string, day int) ([]Entry, error)
	Create(ctx context.Context, entry *Entry) error
}

type bunRepository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &bunRepository{db: db}
}

func (r *bunRepository) ForDay(ctx context.Context, studentID string, day int) ([]Entry, error) {
	var entries []Entry
	err := r.db.NewSelect().
		Model(&entries).
		Where("cs.student_id = ?", studentID).
		Where("cs.day_of_week = ?", day).
		Order("cs.start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *bunRepository) Create(ctx context.Context, entry *Entry) error {
	_, err := r.db.NewInsert().Model(entry).Exec(ctx)
	return err
}
