package quality

import (
	"context"

	"github.com/arloliu/hype/partition"
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"
)

// SumOfExternalDegrees sums the external degree of every partition.
//
// One task per partition computes partition.ExternalDegree against the whole
// collection; at most WithConcurrency tasks run at once. The call blocks
// until every task has finished.
//
// Parameters:
//   - ctx: Context checked before each partition is scanned
//   - parts: Frozen partition collection
//   - opts: Optional configuration (WithConcurrency)
//
// Returns:
//   - int: Sum of external degrees
//   - error: ctx.Err() if the context was canceled
func SumOfExternalDegrees(ctx context.Context, parts []*partition.Partition, opts ...Option) (int, error) {
	o := newOptions(opts)

	degrees := make([]int, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, p := range parts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			degrees[i] = p.ExternalDegree(parts)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	sum := 0
	for _, d := range degrees {
		sum += d
	}

	return sum, nil
}

// HyperedgeCut counts the distinct edge ids present in more than one partition.
//
// Each partition is scanned by its own bounded task. A task only reports
// edges that also appear in a partition with a higher index, so every cut
// edge is found by the lowest partition holding it and the comparison work
// per partition pair is done once.
//
// Parameters:
//   - ctx: Context checked before each partition is scanned
//   - parts: Frozen partition collection
//   - opts: Optional configuration (WithConcurrency)
//
// Returns:
//   - int: Number of cut hyperedges
//   - error: ctx.Err() if the context was canceled
func HyperedgeCut(ctx context.Context, parts []*partition.Partition, opts ...Option) (int, error) {
	o := newOptions(opts)

	cut := xsync.NewMap[uint64, struct{}]()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, p := range parts {
		later := parts[i+1:]
		if len(later) == 0 {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.RangeEdges(func(e uint64) bool {
				for _, other := range later {
					if other.HasEdge(e) {
						cut.Store(e, struct{}{})
						break
					}
				}

				return true
			})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return cut.Size(), nil
}

// KMinus1 returns the replication metric: the sum of partition edge counts
// minus the number of distinct edge ids across all partitions.
//
// This equals the sum over edges of (partitions containing the edge - 1), so
// it is never negative and is zero iff no edge spans two partitions.
//
// Returns:
//   - int: The k-1 metric
//   - error: ctx.Err() if the context was canceled
func KMinus1(ctx context.Context, parts []*partition.Partition) (int, error) {
	total := 0
	distinct := make(map[uint64]struct{})
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		total += p.NumberOfEdges()
		p.RangeEdges(func(e uint64) bool {
			distinct[e] = struct{}{}
			return true
		})
	}

	return total - len(distinct), nil
}

// NodeBalancing returns (max - min) / max over partition node counts.
//
// The result is in [0, 1] and reaches 1 only when some partition is empty.
// It is 0 when all partitions hold the same number of nodes, including the
// degenerate case where every partition is empty.
func NodeBalancing(parts []*partition.Partition) float64 {
	return balancing(parts, (*partition.Partition).NumberOfNodes)
}

// EdgeBalancing returns (max - min) / max over partition edge counts.
//
// The result is in [0, 1] and reaches 1 only when some partition has no edge.
// It is 0 when all partitions touch the same number of edges, including the
// degenerate case where no partition has an edge.
func EdgeBalancing(parts []*partition.Partition) float64 {
	return balancing(parts, (*partition.Partition).NumberOfEdges)
}

func balancing(parts []*partition.Partition, size func(*partition.Partition) int) float64 {
	if len(parts) == 0 {
		return 0
	}

	lo, hi := size(parts[0]), size(parts[0])
	for _, p := range parts[1:] {
		n := size(p)
		lo = min(lo, n)
		hi = max(hi, n)
	}

	if hi == 0 {
		return 0
	}

	return float64(hi-lo) / float64(hi)
}
