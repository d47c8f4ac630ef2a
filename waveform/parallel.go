package waveform

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of frequencies a SeriesParallel worker
// evaluates between cancellation checks.
const DefaultChunkSize = 4096

// ErrWorkers is returned by SeriesParallel for a non-positive worker count.
var ErrWorkers = errors.New("waveform: workers must be positive")

// SeriesParallel is Series evaluated by at most workers goroutines over
// contiguous chunks of freqs. The result is identical to Series. It stops
// early with ctx.Err() if ctx is cancelled.
func SeriesParallel(ctx context.Context, m Model, freqs []float64, phic float64, workers int) ([]complex128, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("SeriesParallel: %d: %w", workers, ErrWorkers)
	}

	h := make([]complex128, len(freqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < len(freqs); lo += DefaultChunkSize {
		if gctx.Err() != nil {
			break
		}
		lo := lo // per-iteration copy; go.mod targets Go 1.21 loop semantics
		hi := min(lo+DefaultChunkSize, len(freqs))
		g.Go(func() error {
			// context cancellation check
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fill(m, freqs[lo:hi], phic, h[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("SeriesParallel: %w", err)
	}
	// A cancelled parent never yields a partial series.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("SeriesParallel: %w", err)
	}

	return h, nil
}
