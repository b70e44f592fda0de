package university

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
	return r.fs.Collection(store.ColUniversities)
}

func (r *Repo) Create(ctx context.Context, u University) (*University, error) {
	ref := r.col().NewDoc()
	u.ID = ref.ID
	if _, err := ref.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create university: %w", err)
	}
	return &u, nil
}

func (r *Repo) List(ctx context.Context) ([]University, error) {
	it := r.col().Documents(ctx)
	out := []University{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list universities: %w", err)
		}
		var u University
		if err := doc.DataTo(&u); err != nil {
			return nil, fmt.Errorf("parse university %s: %w", doc.Ref.ID, err)
		}
		if u.ID == "" {
			u.ID = doc.Ref.ID
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*University, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: university %s", ErrNotFound, id)
	}
	var u University
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("parse university %s: %w", id, err)
	}
	if u.ID == "" {
		u.ID = id
	}
	return &u, nil
}

func (r *Repo) UpdateFields(ctx context.Context, id string, updates map[string]any) error {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("update university %s: %w", id, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete university %s: %w", id, err)
	}
	return nil
}
