package types

// PartitionView is the read-only surface of a partition that assignment
// strategies may inspect. Strategies never receive a mutable partition.
type PartitionView interface {
	// ID returns the partition ordinal (0..P-1).
	ID() int

	// NumberOfNodes returns the number of nodes assigned so far.
	NumberOfNodes() int

	// NumberOfEdges returns the number of distinct edge ids touched so far.
	NumberOfEdges() int

	// HasEdge reports whether the partition already touches the edge id.
	HasEdge(edge uint64) bool

	// CommonTopics counts the ids in edges that the partition already touches.
	CommonTopics(edges []uint64) int
}

// AssignmentStrategy selects the partition that receives a streamed element.
//
// Strategies implement different selection rules:
//   - MinMax: balance-constrained neighbourhood heuristic (default)
//   - RoundRobin: cyclic placement, ignores hyperedges
//   - ConsistentHash: node id hashing, ignores hyperedges
//
// The streaming engine calls Select once per element, strictly sequentially,
// and applies the result before the next call.
//
// Strategy implementations should:
//   - Be deterministic (same partitions and element → same choice)
//   - Be stateless (everything they need is in the partition views)
//   - Never return an index outside parts
type AssignmentStrategy interface {
	// Select picks a partition for the element.
	//
	// Parameters:
	//   - parts: Views of all partitions, ordered by partition index
	//   - elem: The element being placed
	//   - balancing: Allowed relative slack above the smallest partition (>= 0)
	//
	// Returns:
	//   - int: Index into parts of the selected partition
	//   - error: Selection error (e.g., ErrNoPartitions)
	Select(parts []PartitionView, elem Element, balancing float64) (int, error)
}
