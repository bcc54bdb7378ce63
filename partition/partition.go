package partition

import (
	"slices"

	"github.com/arloliu/hype/types"
)

// Partition holds the nodes assigned to one partition and every edge id
// those nodes touch.
//
// Invariants:
//   - a node, once added, is never removed (except by Clear)
//   - the edge set only grows
type Partition struct {
	id    int
	nodes map[uint64]struct{}
	edges map[uint64]struct{}
}

var _ types.PartitionView = (*Partition)(nil)

// New creates an empty partition with the given ordinal.
//
// Parameters:
//   - id: Partition ordinal, fixed for the lifetime of the partition
//
// Returns:
//   - *Partition: Empty partition
func New(id int) *Partition {
	return &Partition{
		id:    id,
		nodes: make(map[uint64]struct{}),
		edges: make(map[uint64]struct{}),
	}
}

// ID returns the partition ordinal.
func (p *Partition) ID() int {
	return p.id
}

// AddNode inserts the node and unions edges into the partition's edge set.
//
// Re-adding a node or an edge id that is already present has no effect.
//
// Parameters:
//   - node: Node id
//   - edges: Incident hyperedge ids (may be empty, may contain duplicates)
func (p *Partition) AddNode(node uint64, edges []uint64) {
	p.nodes[node] = struct{}{}
	for _, e := range edges {
		p.edges[e] = struct{}{}
	}
}

// HasNode reports whether the node is assigned to this partition.
func (p *Partition) HasNode(node uint64) bool {
	_, ok := p.nodes[node]
	return ok
}

// HasEdge reports whether any node of this partition touches the edge id.
func (p *Partition) HasEdge(edge uint64) bool {
	_, ok := p.edges[edge]
	return ok
}

// CommonTopics counts the entries of edges that this partition already touches.
//
// Every entry is counted, so an id listed twice scores twice. The partition
// is not modified.
//
// Parameters:
//   - edges: Candidate node's hyperedge ids
//
// Returns:
//   - int: Affinity score of the candidate node for this partition
func (p *Partition) CommonTopics(edges []uint64) int {
	count := 0
	for _, e := range edges {
		if _, ok := p.edges[e]; ok {
			count++
		}
	}

	return count
}

// NumberOfNodes returns the number of nodes assigned to the partition.
func (p *Partition) NumberOfNodes() int {
	return len(p.nodes)
}

// NumberOfEdges returns the number of distinct edge ids the partition touches.
func (p *Partition) NumberOfEdges() int {
	return len(p.edges)
}

// ExternalDegree counts the edges of this partition that at least one other
// partition also touches.
//
// An edge shared with several other partitions still counts once. Partitions
// in all with the same ID as p are skipped, so p itself may be part of all.
// Neither p nor all are modified, which makes the call safe to run
// concurrently for every partition of a finished partitioning.
//
// Parameters:
//   - all: Every partition of the partitioning
//
// Returns:
//   - int: External degree of p
func (p *Partition) ExternalDegree(all []*Partition) int {
	degree := 0
	for e := range p.edges {
		for _, other := range all {
			if other.id == p.id {
				continue
			}
			if other.HasEdge(e) {
				degree++
				break
			}
		}
	}

	return degree
}

// RangeEdges calls fn for every edge id of the partition until fn returns false.
// Iteration order is unspecified.
func (p *Partition) RangeEdges(fn func(edge uint64) bool) {
	for e := range p.edges {
		if !fn(e) {
			return
		}
	}
}

// Nodes returns the assigned node ids in ascending order.
func (p *Partition) Nodes() []uint64 {
	return sortedKeys(p.nodes)
}

// Edges returns the touched edge ids in ascending order.
func (p *Partition) Edges() []uint64 {
	return sortedKeys(p.edges)
}

// Clear removes every node and edge from the partition. The id is kept.
func (p *Partition) Clear() {
	clear(p.nodes)
	clear(p.edges)
}

func sortedKeys(set map[uint64]struct{}) []uint64 {
	keys := make([]uint64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
