package streamer

import "github.com/arloliu/hype/types"

// Option configures a Streamer with optional dependencies.
type Option func(*streamerOptions)

type streamerOptions struct {
	strategy    types.AssignmentStrategy
	strategySet bool
	logger      types.Logger
	metrics     types.MetricsCollector
	hooks       *types.Hooks
}

// WithStrategy sets the assignment strategy.
//
// Parameters:
//   - s: Strategy implementation (nil is rejected by New)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	s, err := streamer.New(8, streamer.WithStrategy(strategy.NewConsistentHash()))
func WithStrategy(s types.AssignmentStrategy) Option {
	return func(o *streamerOptions) {
		o.strategy = s
		o.strategySet = true
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for New
func WithLogger(logger types.Logger) Option {
	return func(o *streamerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *streamerOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets streaming event hooks.
//
// Example:
//
//	hooks := &types.Hooks{
//	    OnStreamCompleted: func(ctx context.Context, stats types.RunStats) error {
//	        log.Printf("streamed %d elements in %s", stats.Elements, stats.Duration)
//	        return nil
//	    },
//	}
//	s, err := streamer.New(4, streamer.WithHooks(hooks))
func WithHooks(hooks *types.Hooks) Option {
	return func(o *streamerOptions) {
		o.hooks = hooks
	}
}
