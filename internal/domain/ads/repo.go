package ads

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
	return r.fs.Collection(store.ColAds)
}

func (r *Repo) Create(ctx context.Context, ad Ad) (*Ad, error) {
	ref := r.col().NewDoc()
	ad.ID = ref.ID
	if _, err := ref.Set(ctx, ad); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return &ad, nil
}

// List returns all non-deleted ads. Soft-deleted records are filtered here,
// at read time; the documents stay in the collection.
func (r *Repo) List(ctx context.Context) ([]Ad, error) {
	it := r.col().Documents(ctx)
	out := []Ad{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list ads: %w", err)
		}
		ad := FromDoc(doc.Ref.ID, doc.Data())
		if ad.Deleted {
			continue
		}
		out = append(out, ad)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Ad, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ad %s", ErrNotFound, id)
	}
	ad := FromDoc(id, doc.Data())
	if ad.Deleted {
		return nil, fmt.Errorf("%w: ad %s", ErrNotFound, id)
	}
	return &ad, nil
}

func (r *Repo) UpdateFields(ctx context.Context, id string, updates map[string]any) error {
	_, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("update ad %s: %w", id, err)
	}
	return nil
}
