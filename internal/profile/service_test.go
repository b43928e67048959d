package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	profiles map[string]*Profile
	err      error
}

func newFakeRepository(profiles ...*Profile) *fakeRepository {
	repo := &fakeRepository{profiles: make(map[string]*Profile)}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (f *fakeRepository) Create(_ context.Context, p *Profile) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.profiles[p.ID] = p
	return p, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, ErrProfileNotFound
}

func (f *fakeRepository) Update(_ context.Context, p *Profile) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.profiles[p.ID]; !ok {
		return ErrProfileNotFound
	}
	f.profiles[p.ID] = p
	return nil
}

func TestGetProfile(t *testing.T) {
	repo := newFakeRepository(&Profile{ID: "s1", Email: "jane@gni.edu", FullName: "Jane Doe"})
	svc := NewService(repo)

	t.Run("returns view with initials", func(t *testing.T) {
		view, err := svc.GetProfile(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", view.FullName)
		assert.Equal(t, "JD", view.Initials)
	})

	t.Run("empty name falls back to ST", func(t *testing.T) {
		repo.profiles["s2"] = &Profile{ID: "s2", Email: "x@gni.edu"}
		view, err := svc.GetProfile(context.Background(), "s2")
		require.NoError(t, err)
		assert.Equal(t, "ST", view.Initials)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetProfile(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.GetProfile(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeRepository(&Profile{ID: "s1", Email: "jane@gni.edu", FullName: "Jane Doe"})
	svc := NewService(repo)

	t.Run("updates fields and recomputes initials", func(t *testing.T) {
		view, err := svc.UpdateProfile(context.Background(), "s1", UpdateRequest{
			FullName:   "Mahidhar Reddy",
			Department: "CSE",
			Semester:   6,
		})
		require.NoError(t, err)
		assert.Equal(t, "Mahidhar Reddy", view.FullName)
		assert.Equal(t, "MR", view.Initials)
		assert.Equal(t, "CSE", repo.profiles["s1"].Department)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo.err = errors.New("connection refused")
		defer func() { repo.err = nil }()

		_, err := svc.UpdateProfile(context.Background(), "s1", UpdateRequest{FullName: "X"})
		assert.Error(t, err)
	})
}
