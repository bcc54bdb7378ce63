package testing

import (
	"fmt"
	"testing"

	"github.com/arloliu/hype/partition"
)

// CheckPartitioning verifies the node uniqueness invariant of a partitioning:
// every ingested node is assigned to exactly one partition and no partition
// holds a node that was never ingested.
//
// Parameters:
//   - parts: Partition collection
//   - nodes: Ingested node ids (duplicates allowed, re-ingesting a node is not an error)
//
// Returns:
//   - error: Description of the first violation found, nil if consistent
func CheckPartitioning(parts []*partition.Partition, nodes []uint64) error {
	expected := make(map[uint64]struct{}, len(nodes))
	for _, n := range nodes {
		expected[n] = struct{}{}
	}

	owner := make(map[uint64]int, len(expected))
	for _, p := range parts {
		for _, n := range p.Nodes() {
			if prev, ok := owner[n]; ok {
				return fmt.Errorf("node %d assigned to partitions %d and %d", n, prev, p.ID())
			}
			if _, ok := expected[n]; !ok {
				return fmt.Errorf("partition %d holds node %d that was never ingested", p.ID(), n)
			}
			owner[n] = p.ID()
		}
	}

	if len(owner) != len(expected) {
		for n := range expected {
			if _, ok := owner[n]; !ok {
				return fmt.Errorf("node %d was ingested but is not assigned", n)
			}
		}
	}

	return nil
}

// CheckEdgesCovered verifies that each partition's edge set contains every
// edge of every node it holds.
//
// Parameters:
//   - parts: Partition collection
//   - adjacency: Edge ids per ingested node
//
// Returns:
//   - error: Description of the first missing edge, nil if covered
func CheckEdgesCovered(parts []*partition.Partition, adjacency map[uint64][]uint64) error {
	for _, p := range parts {
		for _, n := range p.Nodes() {
			for _, e := range adjacency[n] {
				if !p.HasEdge(e) {
					return fmt.Errorf("partition %d holds node %d but not its edge %d", p.ID(), n, e)
				}
			}
		}
	}

	return nil
}

// AssertPartitioningConsistent fails the test if CheckPartitioning reports a violation.
func AssertPartitioningConsistent(t testing.TB, parts []*partition.Partition, nodes []uint64) {
	t.Helper()

	if err := CheckPartitioning(parts, nodes); err != nil {
		t.Fatalf("inconsistent partitioning: %v", err)
	}
}

// AssertEdgesCovered fails the test if CheckEdgesCovered reports a missing edge.
func AssertEdgesCovered(t testing.TB, parts []*partition.Partition, adjacency map[uint64][]uint64) {
	t.Helper()

	if err := CheckEdgesCovered(parts, adjacency); err != nil {
		t.Fatalf("edge coverage violated: %v", err)
	}
}
