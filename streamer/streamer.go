package streamer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/arloliu/hype/internal/hooks"
	"github.com/arloliu/hype/internal/logging"
	"github.com/arloliu/hype/internal/metrics"
	"github.com/arloliu/hype/partition"
	"github.com/arloliu/hype/strategy"
	"github.com/arloliu/hype/types"
)

// scorer is implemented by strategies that can report the affinity score of
// their choice.
type scorer interface {
	SelectWithScore(parts []types.PartitionView, elem types.Element, balancing float64) (int, int, error)
}

// Streamer assigns streamed nodes to a fixed set of partitions.
//
// Thread Safety:
//   - AddElement, Consume and Freeze must be called from one goroutine
//   - After Freeze, Partitions and the read-only accessors are safe for concurrent use
type Streamer struct {
	parts []*partition.Partition
	views []types.PartitionView

	strategy types.AssignmentStrategy
	logger   types.Logger
	metrics  types.MetricsCollector
	hooks    types.Hooks

	elements int
	frozen   atomic.Bool
}

// New creates a Streamer with count empty partitions indexed 0..count-1.
//
// Parameters:
//   - count: Number of partitions (must be positive)
//   - opts: Optional configuration (WithStrategy, WithLogger, WithMetrics, WithHooks)
//
// Returns:
//   - *Streamer: Initialized streamer
//   - error: types.ErrInvalidPartitionCount, types.ErrStrategyRequired
//
// Example:
//
//	s, err := streamer.New(4, streamer.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(count int, opts ...Option) (*Streamer, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidPartitionCount, count)
	}

	o := &streamerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if o.strategySet && o.strategy == nil {
		return nil, types.ErrStrategyRequired
	}
	if o.strategy == nil {
		o.strategy = strategy.NewMinMax()
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	s := &Streamer{
		parts:    make([]*partition.Partition, count),
		views:    make([]types.PartitionView, count),
		strategy: o.strategy,
		logger:   o.logger,
		metrics:  o.metrics,
		hooks:    hooks.Fill(o.hooks),
	}
	for i := range s.parts {
		s.parts[i] = partition.New(i)
		s.views[i] = s.parts[i]
	}

	return s, nil
}

// AddElement assigns one node and its hyperedges to a partition.
//
// The strategy chooses the partition; the node is then added and the edge
// ids are merged into that partition's edge set. A node that is already
// assigned stays where it is: its new edges are merged into its current
// partition and the strategy is not consulted.
//
// Parameters:
//   - node: Node id
//   - edges: Incident hyperedge ids (may be empty)
//   - balancing: Balancing factor (>= 0)
//
// Returns:
//   - int: Index of the chosen partition
//   - error: types.ErrAlreadyFrozen, types.ErrInvalidBalancing, or a strategy error
func (s *Streamer) AddElement(node uint64, edges []uint64, balancing float64) (int, error) {
	if s.frozen.Load() {
		return -1, types.ErrAlreadyFrozen
	}
	if err := strategy.ValidateBalancing(balancing); err != nil {
		return -1, err
	}

	if idx := s.owner(node); idx >= 0 {
		s.parts[idx].AddNode(node, edges)
		s.elements++
		s.logger.Debug("element merged into existing partition", "node", node, "partition", idx, "edges", len(edges))

		return idx, nil
	}

	elem := types.Element{Node: node, Edges: edges}

	var (
		idx   int
		score int
		err   error
	)
	if sc, ok := s.strategy.(scorer); ok {
		idx, score, err = sc.SelectWithScore(s.views, elem, balancing)
	} else {
		idx, err = s.strategy.Select(s.views, elem, balancing)
		if err == nil && idx >= 0 && idx < len(s.parts) {
			score = s.parts[idx].CommonTopics(edges)
		}
	}
	if err != nil {
		return -1, fmt.Errorf("select partition for node %d: %w", node, err)
	}
	if idx < 0 || idx >= len(s.parts) {
		return -1, fmt.Errorf("select partition for node %d: index %d out of range [0,%d)", node, idx, len(s.parts))
	}

	s.parts[idx].AddNode(node, edges)
	s.elements++

	s.metrics.RecordElementAssigned(idx, score)
	s.logger.Debug("element assigned", "node", node, "partition", idx, "score", score, "edges", len(edges))

	return idx, nil
}

// Consume reads every element from src and assigns it with AddElement.
//
// The context is checked between elements. Hook errors are logged and do
// not stop the stream. OnStreamCompleted runs only when the source is
// exhausted (io.EOF).
//
// Parameters:
//   - ctx: Context for cancellation
//   - src: Element source, read until io.EOF
//   - balancing: Balancing factor (>= 0)
//
// Returns:
//   - int: Number of elements assigned by this call
//   - error: Source, balancing, strategy or context error; elements assigned
//     before the error stay assigned
func (s *Streamer) Consume(ctx context.Context, src types.ElementSource, balancing float64) (int, error) {
	if src == nil {
		return 0, types.ErrSourceRequired
	}
	if s.frozen.Load() {
		return 0, types.ErrAlreadyFrozen
	}
	if err := strategy.ValidateBalancing(balancing); err != nil {
		return 0, err
	}

	s.logger.Info("streaming started", "partitions", len(s.parts), "balancing", balancing)

	start := time.Now()
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		elem, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("read element %d: %w", count+1, err)
		}

		idx, err := s.AddElement(elem.Node, elem.Edges, balancing)
		if err != nil {
			return count, err
		}
		count++

		if err := s.hooks.OnElementAssigned(ctx, elem.Node, idx); err != nil {
			s.logger.Warn("element hook failed", "node", elem.Node, "partition", idx, "error", err)
		}
	}

	stats := types.RunStats{
		Partitions: len(s.parts),
		Elements:   count,
		Duration:   time.Since(start),
	}

	s.metrics.RecordStreamingDuration(stats.Duration.Seconds(), count)
	s.logger.Info("streaming completed", "elements", count, "duration", stats.Duration)

	if err := s.hooks.OnStreamCompleted(ctx, stats); err != nil {
		s.logger.Warn("stream completed hook failed", "error", err)
	}

	return count, nil
}

func (s *Streamer) owner(node uint64) int {
	for i, p := range s.parts {
		if p.HasNode(node) {
			return i
		}
	}

	return -1
}

// Freeze ends the streaming phase. Later AddElement and Consume calls fail
// with types.ErrAlreadyFrozen. Freeze is idempotent.
func (s *Streamer) Freeze() {
	if s.frozen.CompareAndSwap(false, true) {
		s.logger.Debug("partitions frozen", "elements", s.elements)
	}
}

// Frozen reports whether Freeze has been called.
func (s *Streamer) Frozen() bool {
	return s.frozen.Load()
}

// Partitions returns the partition collection ordered by index.
//
// The slice is a copy; the partitions are shared. Do not mutate them, and
// only read them concurrently after Freeze.
func (s *Streamer) Partitions() []*partition.Partition {
	out := make([]*partition.Partition, len(s.parts))
	copy(out, s.parts)

	return out
}

// Len returns the number of partitions.
func (s *Streamer) Len() int {
	return len(s.parts)
}

// Elements returns the number of elements assigned so far.
func (s *Streamer) Elements() int {
	return s.elements
}
