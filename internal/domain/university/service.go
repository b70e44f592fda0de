package university

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"campusbites/backend/internal/domain/restaurant"
	"campusbites/backend/internal/utils"
)

type Service struct {
	repo     *Repo
	restRepo *restaurant.Repo
	log      *zap.Logger
}

func NewService(repo *Repo, restRepo *restaurant.Repo, log *zap.Logger) *Service {
	return &Service{repo: repo, restRepo: restRepo, log: log}
}

func (s *Service) List(ctx context.Context) ([]University, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*University, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*University, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}

	now := time.Now().UTC()
	u := University{
		Name:      in.Name,
		NameLower: utils.NormalizeNameLower(in.Name),
		Slug:      utils.Slugify(in.Name),
		ShortName: in.ShortName,
		City:      in.City,
		Hostels:   in.Hostels,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.Hostels == nil {
		u.Hostels = []string{}
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*University, error) {
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
		updates["slug"] = utils.Slugify(*in.Name)
	}
	if in.ShortName != nil {
		updates["shortName"] = *in.ShortName
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.Hostels != nil {
		updates["hostels"] = *in.Hostels
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

// AddHostel appends one hostel name. Duplicates are rejected on exact match
// only; two spellings differing in case coexist.
func (s *Service) AddHostel(ctx context.Context, id, hostel string) (*University, error) {
	hostel = strings.TrimSpace(hostel)
	if hostel == "" {
		return nil, fmt.Errorf("%w: hostel name is required", ErrBadRequest)
	}

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, h := range u.Hostels {
		if h == hostel {
			return nil, fmt.Errorf("%w: hostel already exists", ErrConflict)
		}
	}

	hostels := append(append([]string{}, u.Hostels...), hostel)
	err = s.repo.UpdateFields(ctx, id, map[string]any{
		"hostels":   hostels,
		"updatedAt": time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) RemoveHostel(ctx context.Context, id, hostel string) (*University, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	hostels := []string{}
	for _, h := range u.Hostels {
		if h != hostel {
			hostels = append(hostels, h)
		}
	}
	err = s.repo.UpdateFields(ctx, id, map[string]any{
		"hostels":   hostels,
		"updatedAt": time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a university after scrubbing its shortName token from every
// restaurant's locations. Hostel tokens and campus fields are left in place,
// so restaurants keeping those still match nothing once the university
// document is gone.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	restaurants, err := s.restRepo.List(ctx)
	if err != nil {
		return err
	}

	short := strings.ToLower(u.ShortName)
	cleaned := 0
	for _, r := range restaurants {
		if u.ShortName == "" {
			break
		}
		keep := make([]string, 0, len(r.Locations))
		touched := false
		for _, loc := range r.Locations {
			if strings.ToLower(loc) == short {
				touched = true
				continue
			}
			keep = append(keep, loc)
		}
		if !touched {
			continue
		}
		if err := s.restRepo.UpdateLocations(ctx, r.ID, keep); err != nil {
			return err
		}
		cleaned++
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("university deleted",
		zap.String("universityId", id),
		zap.Int("restaurantsCleaned", cleaned))
	return nil
}
