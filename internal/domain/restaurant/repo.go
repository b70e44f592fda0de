package restaurant

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"campusbites/backend/internal/store"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.fs.Collection(store.ColRestaurants)
}

func (r *Repo) List(ctx context.Context) ([]Restaurant, error) {
	it := r.col().Documents(ctx)
	out := []Restaurant{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list restaurants: %w", err)
		}
		var rest Restaurant
		if err := doc.DataTo(&rest); err != nil {
			return nil, fmt.Errorf("parse restaurant %s: %w", doc.Ref.ID, err)
		}
		if rest.ID == "" {
			rest.ID = doc.Ref.ID
		}
		out = append(out, rest)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Restaurant, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, id)
	}
	var rest Restaurant
	if err := doc.DataTo(&rest); err != nil {
		return nil, fmt.Errorf("parse restaurant %s: %w", id, err)
	}
	if rest.ID == "" {
		rest.ID = id
	}
	return &rest, nil
}

func (r *Repo) SearchByNamePrefix(ctx context.Context, q string, limit int) ([]Restaurant, error) {
	q = strings.TrimSpace(strings.ToLower(q))

	var it *firestore.DocumentIterator
	if q == "" {
		it = r.col().OrderBy("name", firestore.Asc).Limit(limit).Documents(ctx)
	} else {
		hi := q + "\uf8ff"
		it = r.col().Where("nameLower", ">=", q).
			Where("nameLower", "<", hi).
			OrderBy("nameLower", firestore.Asc).
			Limit(limit).
			Documents(ctx)
	}

	out := []Restaurant{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("search restaurants: %w", err)
		}
		var rest Restaurant
		if err := doc.DataTo(&rest); err != nil {
			continue
		}
		if rest.ID == "" {
			rest.ID = doc.Ref.ID
		}
		out = append(out, rest)
	}
	return out, nil
}

func (r *Repo) UpdateFields(ctx context.Context, id string, updates map[string]any) error {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("update restaurant %s: %w", id, err)
	}
	return nil
}

// UpdateLocations issues exactly one write of the new locations array.
func (r *Repo) UpdateLocations(ctx context.Context, id string, locations []string) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "locations", Value: locations},
	})
	if err != nil {
		return fmt.Errorf("update locations on restaurant %s: %w", id, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete restaurant %s: %w", id, err)
	}
	return nil
}
