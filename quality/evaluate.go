package quality

import (
	"context"
	"fmt"
	"time"

	"github.com/arloliu/hype/partition"
	"github.com/arloliu/hype/types"
	"golang.org/x/sync/errgroup"
)

// Evaluate computes all five quality metrics concurrently.
//
// Each metric runs as its own task; SumOfExternalDegrees and HyperedgeCut fan
// out further per partition. Per-metric durations go to the metrics
// collector and to the logger at debug level. The final scores are recorded
// with RecordQuality once all tasks have joined.
//
// Parameters:
//   - ctx: Context for cancellation between partitions
//   - parts: Frozen partition collection (must not be modified during the call)
//   - opts: Optional configuration (WithConcurrency, WithLogger, WithMetrics)
//
// Returns:
//   - types.Quality: All five scores
//   - error: ctx.Err() wrapped with the failing metric name
//
// Example:
//
//	s.Freeze()
//	q, err := quality.Evaluate(ctx, s.Partitions(), quality.WithConcurrency(8))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(q.HyperedgeCut, q.KMinus1)
func Evaluate(ctx context.Context, parts []*partition.Partition, opts ...Option) (types.Quality, error) {
	o := newOptions(opts)

	var q types.Quality

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return o.timed(types.MetricSumOfExternalDegrees, func() (err error) {
			q.SumOfExternalDegrees, err = SumOfExternalDegrees(gctx, parts, opts...)
			return err
		})
	})

	g.Go(func() error {
		return o.timed(types.MetricHyperedgeCut, func() (err error) {
			q.HyperedgeCut, err = HyperedgeCut(gctx, parts, opts...)
			return err
		})
	})

	g.Go(func() error {
		return o.timed(types.MetricKMinus1, func() (err error) {
			q.KMinus1, err = KMinus1(gctx, parts)
			return err
		})
	})

	g.Go(func() error {
		return o.timed(types.MetricNodeBalancing, func() error {
			q.NodeBalancing = NodeBalancing(parts)
			return nil
		})
	})

	g.Go(func() error {
		return o.timed(types.MetricEdgeBalancing, func() error {
			q.EdgeBalancing = EdgeBalancing(parts)
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return types.Quality{}, err
	}

	o.metrics.RecordQuality(q)

	return q, nil
}

func (o *options) timed(metric string, fn func() error) error {
	start := time.Now()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", metric, err)
	}
	elapsed := time.Since(start)

	o.metrics.RecordMetricDuration(metric, elapsed.Seconds())
	o.logger.Debug("metric computed", "metric", metric, "duration", elapsed)

	return nil
}
