// Package partition provides the partition entity of the streaming hypergraph
// partitioner.
//
// A Partition owns the set of node ids assigned to it and the set of
// hyperedge ids those nodes touch. The edge sets of different partitions
// overlap whenever a hyperedge spans several partitions; the quality metrics
// measure exactly that overlap.
//
// Lifecycle:
//
//	New(id) → AddNode ... AddNode (streaming, single goroutine) → read-only use by metrics
//
// Partitions are not safe for concurrent mutation. Once streaming has
// finished they may be read from any number of goroutines.
package partition
