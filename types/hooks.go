package types

import "context"

// Hooks defines callbacks for streaming events.
//
// All hooks are optional. They run synchronously on the streaming goroutine,
// between two element assignments, so they observe a consistent partition
// state. Keep them short: a slow hook slows the whole stream.
//
// Hook errors are logged but never abort the stream.
//
// Example:
//
//	hooks := &hype.Hooks{
//	    OnElementAssigned: func(ctx context.Context, node uint64, partitionID int) error {
//	        placements[node] = partitionID
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnElementAssigned is called after a node has been added to a partition.
	OnElementAssigned func(ctx context.Context, node uint64, partitionID int) error

	// OnStreamCompleted is called once the element source is exhausted.
	OnStreamCompleted func(ctx context.Context, stats RunStats) error
}
