package autostart

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Aggregator runs the readers for the current OS and joins their results.
type Aggregator struct {
	readers []Reader
	logger  *zap.Logger
}

// NewAggregator creates an aggregator over readers, kept in the given order.
func NewAggregator(logger *zap.Logger, readers ...Reader) *Aggregator {
	return &Aggregator{
		readers: readers,
		logger:  logger.Named("aggregator"),
	}
}

// Readers returns a copy of the registered readers.
func (a *Aggregator) Readers() []Reader {
	result := make([]Reader, len(a.readers))
	copy(result, a.readers)
	return result
}

// All enumerates every reader concurrently and concatenates their entries in
// reader order. A reader that fails is logged and contributes nothing; All
// itself never fails and returns an empty list when there are no readers.
func (a *Aggregator) All(ctx context.Context) []StartupItem {
	results := make([][]StartupItem, len(a.readers))

	var g errgroup.Group
	for i, r := range a.readers {
		g.Go(func() error {
			items, err := r.Read(ctx)
			if err != nil {
				var unavailable *SourceUnavailableError
				if !errors.As(err, &unavailable) {
					err = &SourceUnavailableError{Source: r.Name(), Err: err}
				}
				a.logger.Warn("Startup source unavailable",
					zap.String("source", r.Name()),
					zap.Error(err))
				return nil
			}
			results[i] = items
			a.logger.Debug("Read startup source",
				zap.String("source", r.Name()),
				zap.Int("count", len(items)))
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, items := range results {
		total += len(items)
	}
	all := make([]StartupItem, 0, total)
	for _, items := range results {
		all = append(all, items...)
	}
	return all
}
