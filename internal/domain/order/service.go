package order

import (
	"context"
	"fmt"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, id)
}

// UpdateStatus writes a new canonical status. Re-submitting the current
// status is rejected, matching how the dashboard's update screen behaves.
func (s *Service) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (*Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}

	status := Status(in.Status)
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrBadRequest, in.Status)
	}

	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if Status(o.Status) == status {
		return nil, fmt.Errorf("%w: order already has status %q", ErrBadRequest, in.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
