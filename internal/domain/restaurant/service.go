package restaurant

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"campusbites/backend/internal/store"
	"campusbites/backend/internal/utils"
)

type Service struct {
	repo   *Repo
	fields *store.Fields
	log    *zap.Logger
}

func NewService(repo *Repo, fields *store.Fields, log *zap.Logger) *Service {
	return &Service{repo: repo, fields: fields, log: log}
}

func (s *Service) List(ctx context.Context) ([]Restaurant, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, q string, limit int) ([]Restaurant, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.SearchByNamePrefix(ctx, q, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*Restaurant, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Restaurant, error) {
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
		updates["nameLower"] = utils.NormalizeNameLower(*in.Name)
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if in.Rating != nil {
		updates["rating"] = *in.Rating
	}
	if in.DeliveryTime != nil {
		updates["deliveryTime"] = *in.DeliveryTime
	}
	if in.DeliveryFee != nil {
		updates["deliveryFee"] = *in.DeliveryFee
	}
	if in.Distance != nil {
		updates["distance"] = *in.Distance
	}
	if in.Cuisine != nil {
		updates["cuisine"] = *in.Cuisine
	}
	if in.Categories != nil {
		updates["categories"] = *in.Categories
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.AddressLine1 != nil {
		updates["addressLine1"] = *in.AddressLine1
	}
	if in.AddressLine2 != nil {
		updates["addressLine2"] = *in.AddressLine2
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.State != nil {
		updates["state"] = *in.State
	}
	if in.PostalCode != nil {
		updates["postalCode"] = *in.PostalCode
	}
	if in.Country != nil {
		updates["country"] = *in.Country
	}
	if in.IsStudent != nil {
		updates["isStudent"] = *in.IsStudent
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	updates["updatedAt"] = time.Now().UTC()

	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// SetOpen flips the isOpen flag on one restaurant. Idempotent at the data
// level: re-setting the current value is just a redundant write.
func (s *Service) SetOpen(ctx context.Context, id string, open bool) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.fields.Set(ctx, store.ColRestaurants, id, "isOpen", open)
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

// CloseAllOpen closes every restaurant whose isOpen is currently true.
func (s *Service) CloseAllOpen(ctx context.Context) (int, error) {
	return CloseAllOpen(ctx, s.repo, s.fields, s.log)
}
