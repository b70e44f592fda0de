package order

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
	return r.fs.Collection(store.ColOrders)
}

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	it := r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx)
	out := []Order{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		var o Order
		if err := doc.DataTo(&o); err != nil {
			return nil, fmt.Errorf("parse order %s: %w", doc.Ref.ID, err)
		}
		if o.ID == "" {
			o.ID = doc.Ref.ID
		}
		o.Status = string(CanonicalStatus(o.Status))
		out = append(out, o)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Order, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	var o Order
	if err := doc.DataTo(&o); err != nil {
		return nil, fmt.Errorf("parse order %s: %w", id, err)
	}
	if o.ID == "" {
		o.ID = id
	}
	o.Status = string(CanonicalStatus(o.Status))
	return &o, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, status Status) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
	})
	if err != nil {
		return fmt.Errorf("update status on order %s: %w", id, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	return nil
}
