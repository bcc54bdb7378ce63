package hype

// Option configures a Partitioner with optional dependencies.
type Option func(*partitionerOptions)

// partitionerOptions holds optional Partitioner configuration.
type partitionerOptions struct {
	strategy AssignmentStrategy
	hooks    *Hooks
	metrics  MetricsCollector
	logger   Logger
}

// WithStrategy sets a custom assignment strategy, overriding Config.Strategy.
//
// Parameters:
//   - strategy: AssignmentStrategy implementation
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	s := strategy.NewConsistentHash(strategy.WithVirtualNodes(300))
//	p, err := hype.NewPartitioner(&cfg, hype.WithStrategy(s))
func WithStrategy(strategy AssignmentStrategy) Option {
	return func(o *partitionerOptions) {
		o.strategy = strategy
	}
}

// WithHooks sets streaming event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	hooks := &hype.Hooks{
//	    OnElementAssigned: func(ctx context.Context, node uint64, partitionID int) error {
//	        return recordPlacement(node, partitionID)
//	    },
//	}
//	p, err := hype.NewPartitioner(&cfg, hype.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *partitionerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	mc := metrics.NewPrometheus(prometheus.DefaultRegisterer, "hype")
//	p, err := hype.NewPartitioner(&cfg, hype.WithMetrics(mc))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *partitionerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (slog-style key-value pairs)
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	p, err := hype.NewPartitioner(&cfg, hype.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(o *partitionerOptions) {
		o.logger = logger
	}
}
