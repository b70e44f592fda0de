package user

import (
	"context"
	"fmt"

	"campusbites/backend/internal/store"
)

type Service struct {
	repo   *Repo
	fields *store.Fields
}

func NewService(repo *Repo, fields *store.Fields) *Service {
	return &Service{repo: repo, fields: fields}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, id)
}

// SetActive flips the account's isActive flag.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.fields.Set(ctx, store.ColUsers, id, "isActive", active); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the account document outright; users are not soft-deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
