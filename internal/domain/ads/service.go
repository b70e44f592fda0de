package ads

import (
	"context"
	"fmt"
	"time"

	"campusbites/backend/internal/store"
)

type Service struct {
	repo   *Repo
	fields *store.Fields
}

func NewService(repo *Repo, fields *store.Fields) *Service {
	return &Service{repo: repo, fields: fields}
}

func (s *Service) List(ctx context.Context) ([]Ad, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Ad, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Ad, error) {
	in.Trim()
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrBadRequest)
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	ad := Ad{
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		Image:     in.Image,
		Link:      in.Link,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, ad)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Ad, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	in.Trim()

	updates := map[string]any{}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrBadRequest)
		}
		updates["title"] = *in.Title
	}
	if in.Subtitle != nil {
		updates["subtitle"] = *in.Subtitle
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if in.Link != nil {
		updates["link"] = *in.Link
	}
	if in.Active != nil {
		updates["active"] = *in.Active
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete soft-deletes: ads flip a deleted flag and disappear from reads, the
// document itself stays.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.fields.Delete(ctx, store.ColAds, id)
}
