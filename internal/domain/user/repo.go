package user

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
	return r.fs.Collection(store.ColUsers)
}

func (r *Repo) List(ctx context.Context) ([]User, error) {
	it := r.col().Documents(ctx)
	out := []User{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		out = append(out, FromDoc(doc.Ref.ID, doc.Data()))
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*User, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	u := FromDoc(id, doc.Data())
	return &u, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
