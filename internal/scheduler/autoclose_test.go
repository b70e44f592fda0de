package scheduler

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeCloser struct {
	calls  int
	closed int
	err    error
}

func (c *fakeCloser) CloseAllOpen(ctx context.Context) (int, error) {
	c.calls++
	return c.closed, c.err
}

type memStore struct {
	cfg     Config
	saveErr error
}

func (s *memStore) Load() (Config, error) { return s.cfg, nil }
func (s *memStore) Save(cfg Config) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.cfg = cfg
	return nil
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 29, hour, minute, 30, 0, time.Local)
}

func newTestCloser(t *testing.T, cfg Config, clock Clock, closer Closer) *AutoCloser {
	t.Helper()
	a, err := NewWithClock(&memStore{cfg: cfg}, closer, clock, zap.NewNop())
	require.NoError(t, err)
	return a
}

func TestCheckNowFiresOnExactMinute(t *testing.T) {
	closer := &fakeCloser{closed: 3}
	a := newTestCloser(t, Config{Enabled: true, Time: "22:00"}, &fakeClock{now: at(22, 0)}, closer)

	assert.True(t, a.CheckNow(context.Background()))
	assert.Equal(t, 1, closer.calls)
}

func TestCheckNowSkipsOtherMinutes(t *testing.T) {
	closer := &fakeCloser{}
	for _, now := range []time.Time{at(22, 1), at(21, 59), at(10, 0)} {
		a := newTestCloser(t, Config{Enabled: true, Time: "22:00"}, &fakeClock{now: now}, closer)
		assert.False(t, a.CheckNow(context.Background()), "should not fire at %v", now)
	}
	assert.Equal(t, 0, closer.calls)
}

func TestCheckNowDisabledOrUnset(t *testing.T) {
	closer := &fakeCloser{}
	clock := &fakeClock{now: at(22, 0)}

	a := newTestCloser(t, Config{Enabled: false, Time: "22:00"}, clock, closer)
	assert.False(t, a.CheckNow(context.Background()))

	a = newTestCloser(t, Config{Enabled: true, Time: ""}, clock, closer)
	assert.False(t, a.CheckNow(context.Background()))

	assert.Equal(t, 0, closer.calls)
}

func TestCheckNowMayFireTwiceInsideSameMinute(t *testing.T) {
	closer := &fakeCloser{}
	a := newTestCloser(t, Config{Enabled: true, Time: "22:00"}, &fakeClock{now: at(22, 0)}, closer)

	assert.True(t, a.CheckNow(context.Background()))
	assert.True(t, a.CheckNow(context.Background()))
	assert.Equal(t, 2, closer.calls)
}

func TestCheckNowReportsCloserFailure(t *testing.T) {
	closer := &fakeCloser{closed: 1, err: errors.New("firestore down")}
	a := newTestCloser(t, Config{Enabled: true, Time: "22:00"}, &fakeClock{now: at(22, 0)}, closer)

	// Still counts as fired even when the bulk close partially failed.
	assert.True(t, a.CheckNow(context.Background()))
}

func TestUpdateConfigFiresImmediatelyWhenArmedAtTargetMinute(t *testing.T) {
	closer := &fakeCloser{}
	a := newTestCloser(t, Config{}, &fakeClock{now: at(22, 0)}, closer)

	require.NoError(t, a.UpdateConfig(context.Background(), Config{Enabled: true, Time: "22:00"}))
	assert.Equal(t, 1, closer.calls)
	assert.Equal(t, Config{Enabled: true, Time: "22:00"}, a.Config())
}

func TestUpdateConfigRejectsBadTime(t *testing.T) {
	a := newTestCloser(t, Config{}, &fakeClock{now: at(12, 0)}, &fakeCloser{})

	for _, bad := range []string{"25:00", "22:61", "10pm", "22"} {
		err := a.UpdateConfig(context.Background(), Config{Enabled: true, Time: bad})
		assert.ErrorIs(t, err, ErrBadConfig, "time %q", bad)
	}
}

func TestUpdateConfigAllowsDisablingWithStaleTime(t *testing.T) {
	a := newTestCloser(t, Config{Enabled: true, Time: "22:00"}, &fakeClock{now: at(12, 0)}, &fakeCloser{})

	require.NoError(t, a.UpdateConfig(context.Background(), Config{Enabled: false, Time: "oops"}))
	assert.False(t, a.Config().Enabled)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "autoclose.json")
	store := NewFileStore(path)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg, "missing file loads as disabled")

	want := Config{Enabled: true, Time: "22:00"}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
