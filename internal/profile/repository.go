package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, profile *Profile) (*Profile, error) {
	_, err := r.db.NewInsert().Model(profile).Returning("*").Exec(ctx)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Profile, error) {
	profile := new(Profile)
	err := r.db.NewSelect().Model(profile).Where("p.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	profile := new(Profile)
	err := r.db.NewSelect().Model(profile).Where("p.email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *repository) Update(ctx context.Context, profile *Profile) error {
	result, err := r.db.NewUpdate().
		Model(profile).
		Column("full_name", "department", "semester", "phone", "avatar_url", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
