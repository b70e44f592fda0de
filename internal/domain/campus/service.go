package campus

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"campusbites/backend/internal/domain/restaurant"
	"campusbites/backend/internal/domain/university"
)

type Service struct {
	restRepo *restaurant.Repo
	uniRepo  *university.Repo
	log      *zap.Logger
}

func NewService(restRepo *restaurant.Repo, uniRepo *university.Repo, log *zap.Logger) *Service {
	return &Service{restRepo: restRepo, uniRepo: uniRepo, log: log}
}

// Assignments partitions all restaurants into assigned / unassigned for one
// university, the way the schools screen renders them.
type Assignments struct {
	University *university.University  `json:"university"`
	Assigned   []restaurant.Restaurant `json:"assigned"`
	Unassigned []restaurant.Restaurant `json:"unassigned"`
}

func (s *Service) ListAssignments(ctx context.Context, universityID string) (*Assignments, error) {
	if universityID == "" {
		return nil, fmt.Errorf("%w: universityId is required", university.ErrBadRequest)
	}

	u, err := s.uniRepo.Get(ctx, universityID)
	if err != nil {
		return nil, err
	}
	restaurants, err := s.restRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &Assignments{
		University: u,
		Assigned:   []restaurant.Restaurant{},
		Unassigned: []restaurant.Restaurant{},
	}
	for _, r := range restaurants {
		if IsAssigned(r, *u) {
			out.Assigned = append(out.Assigned, r)
		} else {
			out.Unassigned = append(out.Unassigned, r)
		}
	}
	return out, nil
}

// ToggleAssignment flips the association by rewriting the restaurant's
// locations with exactly one write. There is no locking: concurrent toggles
// on the same restaurant race and the last write wins.
func (s *Service) ToggleAssignment(ctx context.Context, restaurantID, universityID string) (*restaurant.Restaurant, error) {
	if restaurantID == "" || universityID == "" {
		return nil, fmt.Errorf("%w: restaurantId and universityId are required", university.ErrBadRequest)
	}

	r, err := s.restRepo.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	u, err := s.uniRepo.Get(ctx, universityID)
	if err != nil {
		return nil, err
	}

	assigned := IsAssigned(*r, *u)
	newLocations := ToggleLocations(r.Locations, *u, assigned)

	if err := s.restRepo.UpdateLocations(ctx, restaurantID, newLocations); err != nil {
		return nil, err
	}
	s.log.Info("assignment toggled",
		zap.String("restaurantId", restaurantID),
		zap.String("universityId", universityID),
		zap.Bool("wasAssigned", assigned))

	return s.restRepo.Get(ctx, restaurantID)
}
