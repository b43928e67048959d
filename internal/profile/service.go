package profile

import (
	"context"
	"errors"
	"time"

	"github.com/Mahidhar1516/GNI/internal/viewmodel"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidInput    = errors.New("invalid input")
)

type Service interface {
	GetProfile(ctx context.Context, id string) (*View, error)
	UpdateProfile(ctx context.Context, id string, req UpdateRequest) (*View, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, id string) (*View, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newView(p), nil
}

func (s *service) UpdateProfile(ctx context.Context, id string, req UpdateRequest) (*View, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.FullName = req.FullName
	p.Department = req.Department
	p.Semester = req.Semester
	p.Phone = req.Phone
	p.AvatarURL = req.AvatarURL
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return newView(p), nil
}

func newView(p *Profile) *View {
	return &View{
		Profile:  p,
		Initials: viewmodel.Initials(p.FullName),
	}
}
