package profile

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Upsert creates the profile when the id is new and updates it otherwise.
// A concurrent create for the same id falls through to an update.
func (s *Service) Upsert(ctx context.Context, id string, req UpsertRequest) (*UpsertResult, error) {
	p := &Profile{
		ID:       id,
		Email:    req.Email,
		FullName: req.FullName,
		Age:      req.Age,
		Gender:   req.Gender,
	}

	_, err := s.repo.GetByID(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		err = s.repo.Insert(ctx, p)
		if errors.Is(err, ErrConflict) {
			break
		}
		if err != nil {
			return nil, err
		}
		return &UpsertResult{Profile: p, Created: true}, nil
	case err != nil:
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &UpsertResult{Profile: p, Created: false}, nil
}
