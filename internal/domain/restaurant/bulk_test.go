package restaurant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLister struct {
	restaurants []Restaurant
	err         error
}

func (f *fakeLister) List(ctx context.Context) ([]Restaurant, error) {
	return f.restaurants, f.err
}

type fakeSetter struct {
	mu      sync.Mutex
	writes  map[string]any
	failIDs map[string]bool
}

func newFakeSetter(failIDs ...string) *fakeSetter {
	fail := map[string]bool{}
	for _, id := range failIDs {
		fail[id] = true
	}
	return &fakeSetter{writes: map[string]any{}, failIDs: fail}
}

func (f *fakeSetter) Set(ctx context.Context, collection, id, field string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[id] {
		return errors.New("write rejected")
	}
	f.writes[id] = value
	return nil
}

func TestCloseAllOpen_ClosesOnlyOpenRestaurants(t *testing.T) {
	lister := &fakeLister{restaurants: []Restaurant{
		{ID: "a", IsOpen: true},
		{ID: "b", IsOpen: false},
		{ID: "c", IsOpen: true},
	}}
	setter := newFakeSetter()

	closed, err := CloseAllOpen(context.Background(), lister, setter, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 2, closed)
	assert.Equal(t, map[string]any{"a": false, "c": false}, setter.writes)
	// already-closed restaurant gets no redundant write
	_, wrote := setter.writes["b"]
	assert.False(t, wrote)
}

func TestCloseAllOpen_NoOpenRestaurants(t *testing.T) {
	lister := &fakeLister{restaurants: []Restaurant{
		{ID: "a", IsOpen: false},
	}}
	setter := newFakeSetter()

	closed, err := CloseAllOpen(context.Background(), lister, setter, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 0, closed)
	assert.Empty(t, setter.writes)
}

func TestCloseAllOpen_PartialFailureKeepsSuccessfulWrites(t *testing.T) {
	lister := &fakeLister{restaurants: []Restaurant{
		{ID: "a", IsOpen: true},
		{ID: "b", IsOpen: true},
		{ID: "c", IsOpen: true},
	}}
	setter := newFakeSetter("b")

	closed, err := CloseAllOpen(context.Background(), lister, setter, zap.NewNop())

	// one aggregate error, but the other writes stay applied
	require.Error(t, err)
	assert.Equal(t, 2, closed)
	assert.Equal(t, false, setter.writes["a"])
	assert.Equal(t, false, setter.writes["c"])
	_, wrote := setter.writes["b"]
	assert.False(t, wrote)
}

func TestCloseAllOpen_ListError(t *testing.T) {
	lister := &fakeLister{err: errors.New("unavailable")}
	setter := newFakeSetter()

	closed, err := CloseAllOpen(context.Background(), lister, setter, zap.NewNop())

	require.Error(t, err)
	assert.Equal(t, 0, closed)
}
