// Package strategy provides built-in assignment strategy implementations.
//
// An assignment strategy decides which partition receives each streamed
// element. The package includes three strategies:
//
//   - MinMax: balance-constrained neighbourhood heuristic (default)
//   - RoundRobin: cyclic placement by current total load
//   - ConsistentHash: consistent hashing of the node id with virtual nodes
//
// # Strategy Selection Guide
//
// MinMax:
//   - Use to minimize hyperedge replication under a load bound
//   - Only partitions whose node count is at most smallest*(1+balancing) are candidates
//   - Among candidates, picks the one sharing the most hyperedges with the element
//   - Ties go to the lowest partition index
//
// RoundRobin:
//   - Perfect node balance, no locality
//   - Useful as a lower bound on balance and an upper bound on replication
//
// ConsistentHash:
//   - Placement depends only on the node id, not on arrival order
//   - Configuration: virtual nodes, hash seed
//
// Custom strategies can be implemented by satisfying the types.AssignmentStrategy interface.
package strategy
