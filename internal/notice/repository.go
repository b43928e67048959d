package notice

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository loads and stores notices.
type Repository interface {
	List(ctx context.Context, kind, category string) ([]Notice, error)
	Create(ctx context.Context, notice *Notice) error
}

type bunRepository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &bunRepository{db: db}
}

func (r *bunRepository) List(ctx context.Context, kind, category string) ([]Notice, error) {
	var notices []Notice
	q := r.db.NewSelect().Model(&notices)
	if kind != "" {
		q = q.Where("n.kind = ?", kind)
	}
	if category != "" {
		q = q.Where("n.category = ?", category)
	}
	if err := q.Order("n.posted_at DESC").Scan(ctx); err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *bunRepository) Create(ctx context.Context, notice *Notice) error {
	_, err := r.db.NewInsert().Model(notice).Exec(ctx)
	return err
}
