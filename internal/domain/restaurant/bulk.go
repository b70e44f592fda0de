package restaurant

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"campusbites/backend/internal/store"
)

// Lister and FieldSetter are what the bulk close actually needs; Repo and
// store.Fields satisfy them.
type Lister interface {
	List(ctx context.Context) ([]Restaurant, error)
}

type FieldSetter interface {
	Set(ctx context.Context, collection, id, field string, value any) error
}

// CloseAllOpen sets isOpen=false on every restaurant currently open, one
// independent write per record. All writes run to completion regardless of
// individual failures: a failed write does not roll back or cancel the
// others, it only surfaces as the aggregate error. Returns the number of
// writes that succeeded.
func CloseAllOpen(ctx context.Context, l Lister, w FieldSetter, log *zap.Logger) (int, error) {
	all, err := l.List(ctx)
	if err != nil {
		return 0, err
	}

	var open []Restaurant
	for _, r := range all {
		if r.IsOpen {
			open = append(open, r)
		}
	}
	if len(open) == 0 {
		log.Info("bulk close: no open restaurants")
		return 0, nil
	}

	var closed atomic.Int64
	var g errgroup.Group
	for _, r := range open {
		r := r
		g.Go(func() error {
			if err := w.Set(ctx, store.ColRestaurants, r.ID, "isOpen", false); err != nil {
				log.Warn("bulk close: write failed",
					zap.String("restaurantId", r.ID),
					zap.Error(err))
				return err
			}
			closed.Add(1)
			return nil
		})
	}

	err = g.Wait()
	log.Info("bulk close finished",
		zap.Int("open", len(open)),
		zap.Int64("closed", closed.Load()),
		zap.Bool("partialFailure", err != nil))
	return int(closed.Load()), err
}
