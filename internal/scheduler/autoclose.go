// Package scheduler closes every open restaurant at a configured wall-clock
// time. The check is a once-per-minute poll comparing the local hour and
// minute for exact equality; there is no already-fired-today latch, so a
// spurious extra tick inside the target minute can fire twice. That is
// harmless: the bulk close only writes restaurants that are still open.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrBadConfig = errors.New("bad autoclose config")

func IsErrBadConfig(err error) bool { return errors.Is(err, ErrBadConfig) }

// Config is the operator-visible schedule. Time is "HH:MM" local time; an
// empty Time disarms the schedule even when Enabled.
type Config struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
}

// Store persists the schedule between restarts.
type Store interface {
	Load() (Config, error)
	Save(Config) error
}

// Closer is the bulk close operation; restaurant.Service satisfies it.
type Closer interface {
	CloseAllOpen(ctx context.Context) (int, error)
}

// Clock is injected so tests can pin the wall clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type AutoCloser struct {
	store  Store
	closer Closer
	clock  Clock
	log    *zap.Logger

	mu  sync.Mutex
	cfg Config
}

func New(store Store, closer Closer, log *zap.Logger) (*AutoCloser, error) {
	return NewWithClock(store, closer, realClock{}, log)
}

func NewWithClock(store Store, closer Closer, clock Clock, log *zap.Logger) (*AutoCloser, error) {
	cfg, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load autoclose config: %w", err)
	}
	return &AutoCloser{
		store:  store,
		closer: closer,
		clock:  clock,
		log:    log,
		cfg:    cfg,
	}, nil
}

func (a *AutoCloser) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// UpdateConfig persists and applies a new schedule, then runs one immediate
// check: re-arming at the exact target minute closes shops right away, same
// as arming the original dashboard did.
func (a *AutoCloser) UpdateConfig(ctx context.Context, cfg Config) error {
	if cfg.Enabled && cfg.Time != "" {
		if _, _, err := parseClock(cfg.Time); err != nil {
			return err
		}
	}
	if err := a.store.Save(cfg); err != nil {
		return fmt.Errorf("save autoclose config: %w", err)
	}

	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()

	a.log.Info("autoclose config updated",
		zap.Bool("enabled", cfg.Enabled),
		zap.String("time", cfg.Time))
	a.CheckNow(ctx)
	return nil
}

// Run polls once per minute until ctx is cancelled, with one immediate check
// on start. A process asleep across the target minute misses that day's
// close; there is no catch-up.
func (a *AutoCloser) Run(ctx context.Context) {
	a.CheckNow(ctx)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			a.log.Info("autoclose scheduler stopped")
			return
		case <-ticker.C:
			a.CheckNow(ctx)
		}
	}
}

// CheckNow fires the bulk close when the current local time matches the
// configured minute exactly. Returns whether it fired.
func (a *AutoCloser) CheckNow(ctx context.Context) bool {
	cfg := a.Config()
	if !cfg.Enabled || cfg.Time == "" {
		return false
	}

	hour, minute, err := parseClock(cfg.Time)
	if err != nil {
		a.log.Warn("autoclose: unparseable time, skipping tick", zap.String("time", cfg.Time))
		return false
	}

	now := a.clock.Now()
	if now.Hour() != hour || now.Minute() != minute {
		return false
	}

	closed, err := a.closer.CloseAllOpen(ctx)
	if err != nil {
		// Partial failure: whatever closed stays closed, nothing retries.
		a.log.Error("autoclose: bulk close failed",
			zap.Int("closed", closed),
			zap.Error(err))
		return true
	}
	a.log.Info("autoclose: closed all open restaurants",
		zap.Int("closed", closed),
		zap.String("at", cfg.Time))
	return true
}

func parseClock(s string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("%w: time must be HH:MM, got %q", ErrBadConfig, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: time out of range: %q", ErrBadConfig, s)
	}
	return hour, minute, nil
}
