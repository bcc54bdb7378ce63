// Package streamer implements the streaming partitioning engine.
//
// A Streamer owns a fixed collection of partitions and assigns hypergraph
// nodes to them one at a time, in arrival order, through an
// types.AssignmentStrategy (strategy.MinMax by default). An assignment is
// never revisited.
//
// The streaming phase is strictly sequential: AddElement and Consume must
// not be called concurrently. Once Freeze is called the collection is
// read-only and may be shared with any number of concurrent readers, such
// as the quality package.
//
// Basic usage:
//
//	s, err := streamer.New(4)
//	if err != nil {
//	    return err
//	}
//	n, err := s.Consume(ctx, src, 0.05)
//	s.Freeze()
//	q, err := quality.Evaluate(ctx, s.Partitions())
package streamer
