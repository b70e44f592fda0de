package menu

import (
	"context"
	"fmt"

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
	return r.fs.Collection(store.ColMenuItems)
}

func (r *Repo) Create(ctx context.Context, item Item) (*Item, error) {
	ref := r.col().NewDoc()
	item.ID = ref.ID
	if _, err := ref.Set(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return &item, nil
}

// List returns all menu items, or only those of one restaurant when
// restaurantID is non-empty.
func (r *Repo) List(ctx context.Context, restaurantID string) ([]Item, error) {
	var it *firestore.DocumentIterator
	if restaurantID == "" {
		it = r.col().Documents(ctx)
	} else {
		it = r.col().Where("restaurantId", "==", restaurantID).Documents(ctx)
	}

	out := []Item{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list menu items: %w", err)
		}
		var item Item
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("parse menu item %s: %w", doc.Ref.ID, err)
		}
		if item.ID == "" {
			item.ID = doc.Ref.ID
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Item, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: menu item %s", ErrNotFound, id)
	}
	var item Item
	if err := doc.DataTo(&item); err != nil {
		return nil, fmt.Errorf("parse menu item %s: %w", id, err)
	}
	if item.ID == "" {
		item.ID = id
	}
	return &item, nil
}

func (r *Repo) UpdateFields(ctx context.Context, id string, updates map[string]any) error {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("update menu item %s: %w", id, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete menu item %s: %w", id, err)
	}
	return nil
}
