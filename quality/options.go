package quality

import (
	"runtime"

	"github.com/arloliu/hype/internal/logging"
	"github.com/arloliu/hype/internal/metrics"
	"github.com/arloliu/hype/types"
)

// Option configures a metric computation.
type Option func(*options)

type options struct {
	concurrency int
	logger      types.Logger
	metrics     types.MetricsCollector
}

func newOptions(opts []Option) *options {
	o := &options{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      logging.NewNop(),
		metrics:     metrics.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	return o
}

// WithConcurrency bounds the number of per-partition tasks running at once.
//
// Values below 1 mean GOMAXPROCS.
//
// Parameters:
//   - n: Maximum concurrent per-partition tasks
//
// Returns:
//   - Option: Functional option for the metric functions
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger used for per-metric debug output.
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the collector receiving metric durations and final scores.
//
// Example:
//
//	q, err := quality.Evaluate(ctx, parts,
//	    quality.WithMetrics(metrics.NewPrometheus(reg, "hype")),
//	)
func WithMetrics(mc types.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}
