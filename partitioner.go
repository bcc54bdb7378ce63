package hype

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/hype/internal/logging"
	"github.com/arloliu/hype/internal/metrics"
	"github.com/arloliu/hype/partition"
	"github.com/arloliu/hype/quality"
	"github.com/arloliu/hype/report"
	"github.com/arloliu/hype/strategy"
	"github.com/arloliu/hype/streamer"
)

// Partitioner runs the two phases of a partitioning: sequential streaming
// followed by concurrent quality evaluation.
//
// A Partitioner holds no per-run state; every Stream or Run call creates a
// fresh set of partitions. Calls on one Partitioner may run concurrently
// unless the configured strategy is stateful and not safe for concurrent use.
type Partitioner struct {
	cfg          Config
	strategy     AssignmentStrategy
	strategyName string
	hooks        *Hooks
	metrics      MetricsCollector
	logger       Logger
}

// Result is the outcome of a partitioning run.
type Result struct {
	// Partitions is the frozen partition collection, ordered by index.
	Partitions []*partition.Partition

	// Quality holds the quality scores; zero until Evaluate has run.
	Quality Quality

	// Elements is the number of streamed elements.
	Elements int

	// StreamingDuration is the wall-clock time of the streaming phase,
	// including reading and parsing the input.
	StreamingDuration time.Duration

	// Fingerprint identifies the node assignment (see partition.Fingerprint).
	Fingerprint uint64

	// Strategy and Balancing record how the partitions were built.
	Strategy  string
	Balancing float64
}

// NewPartitioner creates a Partitioner.
//
// The configuration is copied, completed with SetDefaults and validated.
// Non-fatal configuration issues are logged as warnings.
//
// Parameters:
//   - cfg: Configuration (required)
//   - opts: Optional dependencies (WithStrategy, WithHooks, WithMetrics, WithLogger)
//
// Returns:
//   - *Partitioner: Ready-to-use partitioner
//   - error: ErrInvalidConfig (possibly wrapping a more specific sentinel)
//
// Example:
//
//	cfg := hype.DefaultConfig()
//	cfg.Partitions = 8
//	p, err := hype.NewPartitioner(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := p.Run(ctx, source.NewReader(f))
func NewPartitioner(cfg *Config, opts ...Option) (*Partitioner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is required", ErrInvalidConfig)
	}

	o := &partitionerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	c := *cfg
	SetDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.ValidateWithWarnings(o.logger)

	p := &Partitioner{
		cfg:          c,
		strategy:     o.strategy,
		strategyName: strings.ToLower(c.Strategy),
		hooks:        o.hooks,
		metrics:      o.metrics,
		logger:       o.logger,
	}

	if p.strategy == nil {
		s, err := strategy.ByName(c.Strategy, c.VirtualNodes, c.HashSeed)
		if err != nil {
			return nil, err
		}
		p.strategy = s
	} else {
		p.strategyName = fmt.Sprintf("%T", p.strategy)
	}

	return p, nil
}

// Config returns the effective configuration (defaults applied).
func (p *Partitioner) Config() Config {
	return p.cfg
}

// Stream assigns every element of src to a partition and freezes the result.
//
// Parameters:
//   - ctx: Context for cancellation, checked between elements
//   - src: Element source, read until io.EOF
//
// Returns:
//   - *Result: Partitions, element count, duration and fingerprint (no quality yet)
//   - error: ErrSourceRequired, a source error (e.g. ErrMalformedInput) or ctx.Err()
func (p *Partitioner) Stream(ctx context.Context, src ElementSource) (*Result, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}

	s, err := streamer.New(p.cfg.Partitions,
		streamer.WithStrategy(p.strategy),
		streamer.WithLogger(p.logger),
		streamer.WithMetrics(p.metrics),
		streamer.WithHooks(p.hooks),
	)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	n, err := s.Consume(ctx, src, p.cfg.Balancing)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("streaming stopped after %d elements: %w", n, err)
	}
	s.Freeze()

	parts := s.Partitions()

	return &Result{
		Partitions:        parts,
		Elements:          n,
		StreamingDuration: elapsed,
		Fingerprint:       partition.Fingerprint(parts),
		Strategy:          p.strategyName,
		Balancing:         p.cfg.Balancing,
	}, nil
}

// Evaluate computes the quality scores of res and stores them in res.Quality.
//
// Returns:
//   - error: ctx.Err() if canceled before all metrics finished
func (p *Partitioner) Evaluate(ctx context.Context, res *Result) error {
	q, err := quality.Evaluate(ctx, res.Partitions,
		quality.WithConcurrency(p.cfg.MetricsConcurrency),
		quality.WithLogger(p.logger),
		quality.WithMetrics(p.metrics),
	)
	if err != nil {
		return fmt.Errorf("evaluate partitions: %w", err)
	}
	res.Quality = q

	p.logger.Info("partitioning evaluated",
		"soed", q.SumOfExternalDegrees,
		"hyperedgeCut", q.HyperedgeCut,
		"kMinus1", q.KMinus1,
		"nodeBalancing", q.NodeBalancing,
		"edgeBalancing", q.EdgeBalancing,
	)

	return nil
}

// Run streams src and evaluates the result.
//
// Example:
//
//	rd, err := source.OpenFile("graph.hgr")
//	if err != nil {
//	    return err
//	}
//	defer rd.Close()
//	res, err := p.Run(ctx, rd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Quality.HyperedgeCut)
func (p *Partitioner) Run(ctx context.Context, src ElementSource) (*Result, error) {
	res, err := p.Stream(ctx, src)
	if err != nil {
		return nil, err
	}

	if err := p.Evaluate(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Report builds a report.Report for res.
//
// Parameters:
//   - input: Name of the input, usually the file path
func (r *Result) Report(input string) *report.Report {
	return &report.Report{
		Input:             input,
		Strategy:          r.Strategy,
		Partitions:        len(r.Partitions),
		Balancing:         r.Balancing,
		Elements:          r.Elements,
		Quality:           r.Quality,
		StreamingDuration: r.StreamingDuration,
		Fingerprint:       r.Fingerprint,
		Sizes:             report.Sizes(r.Partitions),
		CreatedAt:         time.Now().UTC(),
	}
}
