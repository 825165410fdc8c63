package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// fanout runs independent storage calls concurrently and waits for all of
// them. Calls share a cancellable context, so the first failure cancels
// its siblings. The surfaced error follows declared order, not completion
// order: callers list existence checks before the dependent operation so
// a missing-row rejection is never masked by whatever the now-irrelevant
// sibling returned. Cancellation errors caused by a sibling's failure are
// skipped unless nothing else failed.
func fanout(ctx context.Context, calls ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	errs := make([]error, len(calls))

	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			errs[i] = call(gctx)
			return errs[i]
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
