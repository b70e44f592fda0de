package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
)

var ErrNotFound = errors.New("not found")

const (
	ColRestaurants  = "restaurants"
	ColMenuItems    = "menuItems"
	ColOrders       = "orders"
	ColAds          = "ads"
	ColUsers        = "users"
	ColUniversities = "universities"
)

// softDeleted lists the collections that flag records instead of removing
// them. Everything else is removed outright.
var softDeleted = map[string]bool{
	ColAds: true,
}

// SoftDeletes reports whether Delete flips a deleted flag for the collection
// rather than removing the document.
func SoftDeletes(collection string) bool {
	return softDeleted[collection]
}

// Fields issues single partial-field writes. There is no queuing, batching,
// or optimistic concurrency: two concurrent writers race and the last write
// wins.
type Fields struct {
	FS *firestore.Client
}

func NewFields(fs *firestore.Client) *Fields {
	return &Fields{FS: fs}
}

// Set writes one field on one document.
func (f *Fields) Set(ctx context.Context, collection, id, field string, value any) error {
	_, err := f.FS.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: value},
	})
	if err != nil {
		return fmt.Errorf("set %s.%s on %s/%s: %w", collection, field, collection, id, err)
	}
	return nil
}

// Delete removes a document, honoring the per-collection delete policy.
func (f *Fields) Delete(ctx context.Context, collection, id string) error {
	if SoftDeletes(collection) {
		return f.Set(ctx, collection, id, "deleted", true)
	}
	_, err := f.FS.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}
