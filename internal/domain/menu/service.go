package menu

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, restaurantID string) ([]Item, error) {
	return s.repo.List(ctx, restaurantID)
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Item, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.RestaurantID == "" {
		return nil, fmt.Errorf("%w: restaurantId is required", ErrBadRequest)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrBadRequest)
	}

	// restaurantId is not checked against the restaurants collection; the
	// consumer app tolerates dangling references and so does this surface.
	now := time.Now().UTC()
	item := Item{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Image:        in.Image,
		Category:     in.Category,
		IsPopular:    in.IsPopular,
		IsVegetarian: in.IsVegetarian,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, item)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Item, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	in.Trim()

	updates := map[string]any{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrBadRequest)
		}
		updates["price"] = *in.Price
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.IsPopular != nil {
		updates["isPopular"] = *in.IsPopular
	}
	if in.IsVegetarian != nil {
		updates["isVegetarian"] = *in.IsVegetarian
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	updates["updatedAt"] = time.Now().UTC()

	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
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
